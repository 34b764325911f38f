// Package batch groups files that resolve to the same command.
package batch

import (
	"strconv"
	"strings"
	"sync"
)

// Batch is one command invocation and the files appended to it.
type Batch struct {
	Program string
	Args    []string
	Files   []string

	seenFiles map[string]struct{}
}

// commandKey identifies a (program, arguments) pair. Every part is length
// prefixed, so no program or argument content can produce another pair's key.
type commandKey string

func newCommandKey(program string, arguments []string) commandKey {
	var keyBuilder strings.Builder
	writePart := func(part string) {
		keyBuilder.WriteString(strconv.Itoa(len(part)))
		keyBuilder.WriteByte(':')
		keyBuilder.WriteString(part)
	}
	writePart(program)
	keyBuilder.WriteString(strconv.Itoa(len(arguments)))
	keyBuilder.WriteByte('#')
	for _, argument := range arguments {
		writePart(argument)
	}
	return commandKey(keyBuilder.String())
}

// Collection accumulates batches for one run. It is safe for concurrent use:
// the first writer for a command creates its batch, later writers append.
type Collection struct {
	mutex   sync.Mutex
	index   map[commandKey]*Batch
	ordered []*Batch
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{index: make(map[commandKey]*Batch)}
}

// Add appends filePath to the batch of (program, arguments), creating it on first use.
// A file already present in that batch is not added again.
func (collection *Collection) Add(filePath string, program string, arguments []string) {
	key := newCommandKey(program, arguments)

	collection.mutex.Lock()
	defer collection.mutex.Unlock()

	if collection.index == nil {
		collection.index = make(map[commandKey]*Batch)
	}
	existingBatch, exists := collection.index[key]
	if !exists {
		existingBatch = &Batch{
			Program:   program,
			Args:      append([]string{}, arguments...),
			seenFiles: make(map[string]struct{}),
		}
		collection.index[key] = existingBatch
		collection.ordered = append(collection.ordered, existingBatch)
	}
	if _, duplicate := existingBatch.seenFiles[filePath]; duplicate {
		return
	}
	existingBatch.seenFiles[filePath] = struct{}{}
	existingBatch.Files = append(existingBatch.Files, filePath)
}

// Batches returns the batches in the order their first file was added.
func (collection *Collection) Batches() []*Batch {
	collection.mutex.Lock()
	defer collection.mutex.Unlock()
	return append([]*Batch(nil), collection.ordered...)
}

// Len reports the number of distinct commands.
func (collection *Collection) Len() int {
	collection.mutex.Lock()
	defer collection.mutex.Unlock()
	return len(collection.ordered)
}
