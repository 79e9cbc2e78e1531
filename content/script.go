package content

import (
	"fmt"
	"log"
	"os"

	"go.starlark.net/starlark"
)

// FromScript executes a Starlark file and returns the labels it
// defines. The script must bind a global `labels`: either a list, or a
// function of no arguments returning one. Non-string items are
// stringified.
func FromScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content script: %w", err)
	}
	return evalScript(path, data)
}

func evalScript(name string, src interface{}) ([]string, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { log.Println("script:", msg) }}

	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("content script %s: %w", name, err)
	}

	v, ok := globals["labels"]
	if !ok {
		return nil, fmt.Errorf("content script %s: no labels defined", name)
	}
	if fn, ok := v.(starlark.Callable); ok {
		v, err = starlark.Call(thread, fn, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("content script %s: %w", name, err)
		}
	}
	return labelStrings(name, v)
}

func labelStrings(name string, v starlark.Value) ([]string, error) {
	iterable, ok := v.(starlark.Iterable)
	if !ok {
		return nil, fmt.Errorf("content script %s: labels is %s, want a list", name, v.Type())
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var out []string
	var item starlark.Value
	for iter.Next(&item) {
		switch val := item.(type) {
		case starlark.String:
			out = append(out, string(val))
		default:
			out = append(out, item.String())
		}
	}
	return out, nil
}
