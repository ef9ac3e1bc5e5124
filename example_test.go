// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hufftext_test

import (
	"fmt"
	"log"

	"github.com/ulikunitz/hufftext"
)

func Example() {
	const text = "The quick brown fox jumps over the lazy dog."
	data, err := hufftext.Serialize(text)
	if err != nil {
		log.Fatalf("hufftext.Serialize error %s", err)
	}
	s, err := hufftext.Deserialize(data)
	if err != nil {
		log.Fatalf("hufftext.Deserialize error %s", err)
	}
	fmt.Println(s)
	// Output:
	// The quick brown fox jumps over the lazy dog.
}

func ExampleAnalyze() {
	st, err := hufftext.Analyze("abracadabra")
	if err != nil {
		log.Fatalf("hufftext.Analyze error %s", err)
	}
	for _, c := range st.Codes {
		fmt.Printf("%c %d %s\n", rune(c.Symbol), c.Freq, c.Bits)
	}
	fmt.Printf("%d bits\n", st.Bits)
	// Output:
	// a 5 0
	// b 2 110
	// c 1 100
	// d 1 101
	// r 2 111
	// 23 bits
}
