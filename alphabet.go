/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package clipstring

import "fmt"

// Alphabet of clip strings. It is not base64url: "w" is out of order and
// "_" precedes "-".
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvxyzw0123456789_-"

// BitsPerChar is the number of bits carried by a single symbol
const BitsPerChar = 6

var (
	encode [1 << BitsPerChar]byte
	decode [128]int8
)

func init() {
	if len(Alphabet) != len(encode) {
		panic(fmt.Errorf("malformed alphabet: %d symbols", len(Alphabet)))
	}

	for i := range decode {
		decode[i] = -1
	}

	for i := 0; i < len(Alphabet); i++ {
		x := Alphabet[i]
		if x >= 128 || decode[x] != -1 {
			panic(fmt.Errorf("malformed alphabet: symbol %q at %d", x, i))
		}
		encode[i] = x
		decode[x] = int8(i)
	}
}

// indexOf returns value of the symbol. pos is the symbol's offset in the
// input, it is reported by the error only.
func indexOf(symbol rune, pos int) (byte, error) {
	if symbol < 0 || symbol >= 128 || decode[symbol] == -1 {
		return 0, &InvalidCharacterError{Char: symbol, Pos: pos}
	}
	return byte(decode[symbol]), nil
}

// symbolAt returns the symbol of 6-bit value
func symbolAt(value byte) byte {
	if int(value) >= len(encode) {
		panic(fmt.Errorf("malformed %d-bit value: %d", BitsPerChar, value))
	}
	return encode[value]
}
