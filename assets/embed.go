// assets/embed.go
//
// Build-time word list for the game. The list is compiled into the binary;
// there is no runtime path override.

package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// WordListName is the embedded file holding one guessable word per line.
const WordListName = "words.txt"

// OpenWordList opens the embedded word list. Callers close the reader.
func OpenWordList() (io.ReadCloser, error) {
	return FS.Open(WordListName)
}
