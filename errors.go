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

import (
	"errors"
	"fmt"
)

// Sentinels of codec failures, use errors.Is to classify the error
var (
	ErrInvalidCharacter = errors.New("clipstring: invalid character")
	ErrInvalidBit       = errors.New("clipstring: invalid bit")
	ErrInvalidLength    = errors.New("clipstring: invalid length")
)

// InvalidCharacterError is returned by Decode when clip string contains
// a symbol outside of the Alphabet.
type InvalidCharacterError struct {
	// Offending symbol
	Char rune
	// Byte offset of the symbol in the clip string
	Pos int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("clipstring: invalid character %q at %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Is(err error) bool { return err == ErrInvalidCharacter }

// InvalidBitError is returned by Encode when bit string contains anything
// except '0' or '1'.
type InvalidBitError struct {
	// Offending character
	Char rune
	// Byte offset of the character in the bit string
	Pos int
}

func (e *InvalidBitError) Error() string {
	return fmt.Sprintf("clipstring: invalid bit %q at %d", e.Char, e.Pos)
}

func (e *InvalidBitError) Is(err error) bool { return err == ErrInvalidBit }

// InvalidLengthError is returned by Encode when length of bit string is not
// a multiple of BitsPerChar.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("clipstring: bit string length (%d) must be a multiple of %d", e.Len, BitsPerChar)
}

func (e *InvalidLengthError) Is(err error) bool { return err == ErrInvalidLength }
