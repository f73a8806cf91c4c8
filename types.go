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

import "encoding/json"

/*******************************************************************************

ClipString

*******************************************************************************/

// ClipString is a sequence of Alphabet symbols
type ClipString string

// Bits decodes clip string to bit string
func (clip ClipString) Bits() (BitString, error) {
	bits, err := Decode(string(clip))
	if err != nil {
		return "", err
	}
	return BitString(bits), nil
}

// Validate checks that clip string is made of Alphabet symbols only
func (clip ClipString) Validate() error {
	for i, r := range string(clip) {
		if _, err := indexOf(r, i); err != nil {
			return err
		}
	}
	return nil
}

func (clip ClipString) String() string { return string(clip) }

// MarshalText encodes clip string as-is
func (clip ClipString) MarshalText() ([]byte, error) {
	return []byte(clip), nil
}

// UnmarshalText decodes clip string, rejecting symbols outside of the Alphabet
func (clip *ClipString) UnmarshalText(b []byte) error {
	val := ClipString(b)
	if err := val.Validate(); err != nil {
		return err
	}
	*clip = val
	return nil
}

// MarshalJSON encodes clip string to JSON string
func (clip ClipString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(clip))
}

// UnmarshalJSON decodes JSON string to clip string
func (clip *ClipString) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	return clip.UnmarshalText([]byte(val))
}

/*******************************************************************************

BitString

*******************************************************************************/

// BitString is a sequence of '0' and '1'
type BitString string

// Clip encodes bit string to clip string
func (bits BitString) Clip() (ClipString, error) {
	clip, err := Encode(string(bits))
	if err != nil {
		return "", err
	}
	return ClipString(clip), nil
}

// Validate checks that bit string is made of '0' and '1' and its length is
// a multiple of BitsPerChar. Bits are checked before length.
func (bits BitString) Validate() error {
	for i, r := range string(bits) {
		if r != '0' && r != '1' {
			return &InvalidBitError{Char: r, Pos: i}
		}
	}

	if len(bits)%BitsPerChar != 0 {
		return &InvalidLengthError{Len: len(bits)}
	}

	return nil
}

func (bits BitString) String() string { return string(bits) }

// MarshalText encodes bit string as-is
func (bits BitString) MarshalText() ([]byte, error) {
	return []byte(bits), nil
}

// UnmarshalText decodes bit string, rejecting malformed input
func (bits *BitString) UnmarshalText(b []byte) error {
	val := BitString(b)
	if err := val.Validate(); err != nil {
		return err
	}
	*bits = val
	return nil
}

// MarshalJSON encodes bit string to JSON string
func (bits BitString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(bits))
}

// UnmarshalJSON decodes JSON string to bit string
func (bits *BitString) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	return bits.UnmarshalText([]byte(val))
}
