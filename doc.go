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

/*

Package clipstring implements codec of clip strings, the compact text encoding
used by city-generation tool to share maps. The clip string packs binary
payload into a string of 64 symbols, 6 bits per symbol.

Clip string looks like base64url but it is not. The alphabet has out-of-order
"w" and swapped "_" and "-" when compared to RFC 4648 §5.

  ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvxyzw0123456789_-

Bit order

The tool reads clip strings left-to-right and least significant bit first,
both in the bit array index and in the character bits. Therefore, the library
reverses the order of symbols when it builds the bit string, each symbol is
rendered most significant bit first:

  clip string   A      B
  value         0      1
  bit string    000001 000000

Values are read later from the bit string in blocks, right-to-left, with the
least significant bit on the right. Interpretation of bits is not the concern
of this library.

Usage

  bits, err := clipstring.Decode("AB")   // "000001000000"
  clip, err := clipstring.Encode(bits)   // "AB"

Decode and Encode are inverse of each other over valid inputs. Both are pure
functions, safe for concurrent use. Errors are typed, see InvalidCharacterError,
InvalidBitError and InvalidLengthError.

*/
package clipstring
