package main

import "github.com/SayaAndy/saya-today-article-schema/cmd"

func main() {
	cmd.Execute()
}
