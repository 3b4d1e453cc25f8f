package minimap_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ZNielsen/code-minimap"
)

const helloWorld = "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hello, world\")\n}\n"

func ExampleString() {
	s, err := minimap.String(strings.NewReader("aaa\n aa\n  a\n   a"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(s)
	// Output: ⠙⢇
}

func ExampleWrite() {
	if err := minimap.Write(os.Stdout, strings.NewReader(helloWorld)); err != nil {
		log.Fatal(err)
	}
	// Output:
	// ⠭⠭⠭⠭⠭⠭
	// ⠝⠛⠛⠛⠛⠛⠓⠒⠒⠒⠒⠒⠒⠒
}

func ExampleNew() {
	m, err := minimap.New(minimap.SetHScale(0.5), minimap.SetVScale(0.5))
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Write(os.Stdout, strings.NewReader(helloWorld)); err != nil {
		log.Fatal(err)
	}
	// Output: ⠿⠿⠿⠤⠤⠤⠤
}
