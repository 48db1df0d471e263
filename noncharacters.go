package infra

// This file has been generated by internal/generator -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2024-26, the whatwg-infra authors

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range table for the Infra Standard's noncharacter set.
// Will be initialized by setupNoncharacters().
// Clients check membership through IsNoncharacter.
var noncharacters *unicode.RangeTable

func setupNoncharacters() {
	noncharacters = rangetable.New(
		// Arena U+FDD0..U+FDEF
		'\ufdd0', '\ufdd1', '\ufdd2', '\ufdd3', '\ufdd4', '\ufdd5', '\ufdd6', '\ufdd7',
		'\ufdd8', '\ufdd9', '\ufdda', '\ufddb', '\ufddc', '\ufddd', '\ufdde', '\ufddf',
		'\ufde0', '\ufde1', '\ufde2', '\ufde3', '\ufde4', '\ufde5', '\ufde6', '\ufde7',
		'\ufde8', '\ufde9', '\ufdea', '\ufdeb', '\ufdec', '\ufded', '\ufdee', '\ufdef',
		// Last two code points of each of the 17 planes
		'\ufffe', '\uffff', '\U0001fffe', '\U0001ffff', '\U0002fffe', '\U0002ffff',
		'\U0003fffe', '\U0003ffff', '\U0004fffe', '\U0004ffff', '\U0005fffe', '\U0005ffff',
		'\U0006fffe', '\U0006ffff', '\U0007fffe', '\U0007ffff', '\U0008fffe', '\U0008ffff',
		'\U0009fffe', '\U0009ffff', '\U000afffe', '\U000affff', '\U000bfffe', '\U000bffff',
		'\U000cfffe', '\U000cffff', '\U000dfffe', '\U000dffff', '\U000efffe', '\U000effff',
		'\U000ffffe', '\U000fffff', '\U0010fffe', '\U0010ffff',
	)
}
