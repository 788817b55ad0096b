package cli

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/rose"
)

//go:embed inventory.cue
var inventorySchema string

// Error codes for inventory loading.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeParseFailed = "E010" // YAML/JSON/CUE syntax error
	ErrCodeSchema      = "E011" // Content does not match the inventory schema
	ErrCodeUnsupported = "E012" // Unknown file extension
)

// LoadError describes why an inventory file could not be loaded.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// inventoryFile is the on-disk shape shared by every format:
//
//	items:
//	  - name: "Aged Brie"
//	    sell_in: 2
//	    quality: 0
type inventoryFile struct {
	Items []rose.Item `yaml:"items" json:"items"`
}

// LoadInventory reads items from a .yaml, .yml, .json or .cue file.
// Values are taken as written; out-of-range quality is not corrected.
func LoadInventory(path string) ([]*rose.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "inventory file not found", Err: err}
		}
		return nil, &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error(), Err: err}
	}

	var file inventoryFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		file, err = decodeYAML(data)
	case ".cue":
		file, err = decodeCUE(path, data)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Path: path, Message: fmt.Sprintf("unsupported inventory format %q", ext)}
	}
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}

	items := make([]*rose.Item, len(file.Items))
	for i := range file.Items {
		it := file.Items[i]
		items[i] = rose.NewItem(it.Name, it.SellIn, it.Quality)
	}
	return items, nil
}

// decodeYAML decodes YAML or JSON (a YAML subset), rejecting unknown fields.
func decodeYAML(data []byte) (inventoryFile, error) {
	var file inventoryFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return inventoryFile{}, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), Err: err}
	}
	return file, nil
}

// decodeCUE compiles the file, unifies it with #Inventory and decodes the
// concrete result.
func decodeCUE(path string, data []byte) (inventoryFile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(inventorySchema, cue.Filename("inventory.cue"))
	if err := schema.Err(); err != nil {
		return inventoryFile{}, &LoadError{Code: ErrCodeGeneric, Message: "invalid embedded schema", Err: err}
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return inventoryFile{}, &LoadError{Code: ErrCodeParseFailed, Message: err.Error(), Err: err}
	}

	unified := schema.LookupPath(cue.ParsePath("#Inventory")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return inventoryFile{}, &LoadError{Code: ErrCodeSchema, Message: err.Error(), Err: err}
	}

	var file inventoryFile
	if err := unified.Decode(&file); err != nil {
		return inventoryFile{}, &LoadError{Code: ErrCodeSchema, Message: err.Error(), Err: err}
	}
	return file, nil
}
