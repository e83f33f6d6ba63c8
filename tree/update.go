package tree

import (
	"fmt"

	"github.com/arloliu/pillow/errs"
	"github.com/arloliu/pillow/node"
)

// Update merges the entries of additions into root, walking additions in
// enumeration order.
//
// For every key of additions:
//   - a key missing from root receives a deep copy of the addition;
//   - a key whose existing value has a different kind stops the merge with a
//     conflict;
//   - two maps are merged recursively;
//   - any other pair, arrays included, is replaced by a deep copy of the
//     addition.
//
// Changes applied before a conflict are kept. Arrays are always replaced
// whole; appendArrays is accepted but does not change the merge.
//
// Parameters:
//   - root: The map to update in place
//   - additions: The map whose entries are merged into root
//   - appendArrays: Reserved, currently ignored
//
// Returns:
//   - error: An error wrapping errs.ErrMergeConflict when either argument is
//     not a map or a kind mismatch is found, nil otherwise
func Update(root, additions *node.Node, appendArrays bool) error {
	if root.Kind() != node.Map || additions.Kind() != node.Map {
		return fmt.Errorf("%w: root is %s and additions is %s", errs.ErrMergeConflict, root.Kind(), additions.Kind())
	}

	return update(root, additions, appendArrays, "")
}

func update(root, additions *node.Node, appendArrays bool, path string) error {
	for key, addition := range additions.All() {
		existing := root.Get(key)
		if existing == nil {
			root.Set(key, Clone(addition))
			continue
		}

		keyPath := path + "/" + key
		if existing.Kind() != addition.Kind() {
			return fmt.Errorf("%w: %s is %s, addition is %s",
				errs.ErrMergeConflict, keyPath, existing.Kind(), addition.Kind())
		}

		if existing.Kind() == node.Map {
			if err := update(existing, addition, appendArrays, keyPath); err != nil {
				return err
			}
			continue
		}

		root.Set(key, Clone(addition))
	}

	return nil
}
