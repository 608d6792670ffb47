package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

// Error codes for board loading.
const (
	ErrCodeNotFound   = "E001" // directory missing or not a directory
	ErrCodeScanError  = "E002" // error scanning for CUE files
	ErrCodeNoFiles    = "E003" // no CUE files in directory
	ErrCodeLoadFailed = "E004" // CUE load/eval failure
	ErrCodeInvalid    = "E005" // boards value has the wrong shape
)

// boardsSchema constrains a board file: a "boards" struct mapping each
// group key to its titles in presentation order.
const boardsSchema = `
boards: {[string]: [...string]}
`

// Board is one group declaration from a board file: the group key and its
// titles in presentation order (first title gets position 1).
type Board struct {
	Group  string
	Titles []string
}

// LoadResult contains the results of loading board files from a directory.
type LoadResult struct {
	Boards    []Board
	FileCount int // Number of CUE files found
}

// LoadError represents an error that occurred during board loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadBoards loads board declarations from every CUE file in a directory.
//
// The files are loaded as one CUE instance, unified with boardsSchema, and
// decoded. Group order in the result is sorted for determinism; title
// order within a group is preserved from the source.
func LoadBoards(dir string) (*LoadResult, error) {
	// Verify directory exists
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("board directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing board directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	// Find CUE files
	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	// Load CUE instances
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if value.Err() != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", value.Err())}
	}

	// The check must run before unification: unifying with the schema
	// would introduce an empty "boards" struct of its own.
	if !value.LookupPath(cue.ParsePath("boards")).Exists() {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: `board file must declare a "boards" struct`, Pos: value.Pos()}
	}

	// Unify with the schema so shape errors carry positions.
	schema := ctx.CompileString(boardsSchema)
	unified := value.Unify(schema)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("invalid board file: %v", err), Pos: value.Pos()}
	}

	boards, err := decodeBoards(unified)
	if err != nil {
		return nil, err
	}

	return &LoadResult{Boards: boards, FileCount: len(cueFiles)}, nil
}

// decodeBoards extracts the boards struct into Board values.
func decodeBoards(value cue.Value) ([]Board, error) {
	boardsValue := value.LookupPath(cue.ParsePath("boards"))
	if !boardsValue.Exists() {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: `board file must declare a "boards" struct`}
	}

	var raw map[string][]string
	if err := boardsValue.Decode(&raw); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("decoding boards: %v", err), Pos: boardsValue.Pos()}
	}

	groups := make([]string, 0, len(raw))
	for group := range raw {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	boards := make([]Board, 0, len(groups))
	for _, group := range groups {
		boards = append(boards, Board{Group: group, Titles: raw[group]})
	}
	return boards, nil
}

// findCUEFiles returns the .cue files directly inside dir, sorted.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".cue") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
