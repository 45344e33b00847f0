package main

import (
	"db-census/cmd"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

func main() {
	cmd.Execute()
}
