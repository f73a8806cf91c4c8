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

import "unicode/utf8"

/*

Decode converts clip string to bit string. Symbols are consumed right-to-left,
each one is rendered as 6 bits, most significant bit first.

  Decode("AB") == "000001000000"

The function fails with *InvalidCharacterError on the first symbol that is not
in the Alphabet.
*/
func Decode(clip string) (string, error) {
	bits := make([]byte, 0, BitsPerChar*len(clip))

	for i := len(clip); i > 0; {
		r, size := utf8.DecodeLastRuneInString(clip[:i])
		i -= size

		x, err := indexOf(r, i)
		if err != nil {
			return "", err
		}

		for b := BitsPerChar - 1; b >= 0; b-- {
			bits = append(bits, '0'+(x>>b)&1)
		}
	}

	return string(bits), nil
}

/*

Encode converts bit string to clip string. It is inverse of Decode: bit string
is split left-to-right into 6-bit groups, each group is mapped to the symbol,
the sequence of symbols is reversed.

  Encode("000001000000") == "AB"

The function fails with *InvalidBitError if the input contains anything but
'0' and '1', otherwise it fails with *InvalidLengthError if the length is not
a multiple of BitsPerChar.
*/
func Encode(bits string) (string, error) {
	if err := BitString(bits).Validate(); err != nil {
		return "", err
	}

	n := len(bits) / BitsPerChar
	clip := make([]byte, n)

	for i := 0; i < n; i++ {
		x := byte(0)
		for _, b := range []byte(bits[i*BitsPerChar : (i+1)*BitsPerChar]) {
			x = x<<1 | (b - '0')
		}
		clip[n-1-i] = symbolAt(x)
	}

	return string(clip), nil
}
