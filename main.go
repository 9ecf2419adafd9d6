package main

import "github.com/pders01/folderclip/cmd"

func main() {
	cmd.Execute()
}
