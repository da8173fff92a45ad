package chatwise

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// sentinelFile marks the root of a ChatWise export. The misspelling is
// ChatWise's own and must match byte for byte.
const sentinelFile = "chatwise-export-verison.txt"

// requiredKeys are the top-level fields a chat file must carry for the
// directory to count as a ChatWise export.
var requiredKeys = []string{"id", "title", "messages"}

// DetectExport reports whether dir is a ChatWise export: either the version
// sentinel is present, or the first chat file decodes to an object with the
// expected fields.
func DetectExport(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, sentinelFile)); err == nil {
		return true
	}

	files, err := ChatFiles(dir)
	if err != nil || len(files) == 0 {
		return false
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		return false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}
	for _, key := range requiredKeys {
		if _, ok := obj[key]; !ok {
			return false
		}
	}
	return true
}
