package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:templates/monorepo
var templates embed.FS

// Monorepo returns the embedded MakeABet monorepo template, rooted at its top.
func Monorepo() fs.FS {
	sub, err := fs.Sub(templates, "templates/monorepo")
	if err != nil {
		panic(err)
	}
	return sub
}
