package ahocorasick_test

import (
	"fmt"

	ahocorasick "github.com/andribas404/aho-corasick"
	"github.com/andribas404/aho-corasick/meta"
)

func ExampleCompile() {
	m, err := ahocorasick.Compile("ab??aba")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.FindAllString("ababacaba"))
	fmt.Println(m.NumSegments(), m.Len())
	// Output:
	// [2]
	// 2 7
}

func ExampleMatcher_FindAll() {
	m := ahocorasick.MustCompile("aba")
	fmt.Println(m.FindAll([]byte("ababa")))
	fmt.Println(m.Count([]byte("ababa")))
	// Output:
	// [0 2]
	// 2
}

func ExampleMatcher_NewStream() {
	m := ahocorasick.MustCompile("a?c")
	s := m.NewStream()
	for _, chunk := range []string{"xa", "bca", "dc"} {
		s.Feed([]byte(chunk), func(anchor int) {
			fmt.Println("anchor", anchor)
		})
	}
	// Output:
	// anchor 1
	// anchor 4
}

func ExampleCompileWithConfig() {
	config := ahocorasick.DefaultConfig().
		WithStrategy(meta.UseFailureLinks).
		WithWildcard('.')
	m, err := ahocorasick.CompileWithConfig("h.s", config)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.FindAllString("his hers has"))
	// Output:
	// [0 9]
}
