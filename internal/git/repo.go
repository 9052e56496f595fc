package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// shortHashLen matches git's default abbreviation.
const shortHashLen = 7

// IsRepo reports whether dir itself contains a git repository.
// Parent directories are not searched: a project generated inside another
// checkout still gets its own repository.
func IsRepo(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

// HeadShort returns the abbreviated hash HEAD points to.
func HeadShort(dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", fmt.Errorf("no repository in %s", dir)
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}

	hash := ref.Hash().String()
	return hash[:min(shortHashLen, len(hash))], nil
}
