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

package clipstring_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fogfish/clipstring"
	"github.com/fogfish/it/v2"
)

func TestClipStringBits(t *testing.T) {
	bits, err := clipstring.ClipString("AB").Bits()

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(bits, clipstring.BitString("000001000000")),
	)

	_, err = clipstring.ClipString("A!").Bits()
	it.Then(t).Should(
		it.True(errors.Is(err, clipstring.ErrInvalidCharacter)),
	)
}

func TestBitStringClip(t *testing.T) {
	clip, err := clipstring.BitString("000001000000").Clip()

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(clip, clipstring.ClipString("AB")),
	)

	_, err = clipstring.BitString("0000010").Clip()
	it.Then(t).Should(
		it.True(errors.Is(err, clipstring.ErrInvalidLength)),
	)
}

func TestClipStringJSON(t *testing.T) {
	type Map struct {
		Clip clipstring.ClipString `json:"clip"`
	}

	in := Map{Clip: "Ac_-w"}
	b, err := json.Marshal(in)
	it.Then(t).Should(
		it.Nil(err),
		it.Equal(string(b), `{"clip":"Ac_-w"}`),
	)

	var out Map
	err = json.Unmarshal(b, &out)
	it.Then(t).Should(
		it.Nil(err),
		it.Equal(out, in),
	)

	err = json.Unmarshal([]byte(`{"clip":"Ac=="}`), &out)
	it.Then(t).Should(
		it.True(errors.Is(err, clipstring.ErrInvalidCharacter)),
	)
}

func TestBitStringJSON(t *testing.T) {
	type Map struct {
		Bits clipstring.BitString `json:"bits"`
	}

	in := Map{Bits: "000001000000"}
	b, err := json.Marshal(in)
	it.Then(t).Should(
		it.Nil(err),
		it.Equal(string(b), `{"bits":"000001000000"}`),
	)

	var out Map
	err = json.Unmarshal(b, &out)
	it.Then(t).Should(
		it.Nil(err),
		it.Equal(out, in),
	)

	err = json.Unmarshal([]byte(`{"bits":"102"}`), &out)
	it.Then(t).Should(
		it.True(errors.Is(err, clipstring.ErrInvalidBit)),
	)

	err = json.Unmarshal([]byte(`{"bits":"101"}`), &out)
	it.Then(t).Should(
		it.True(errors.Is(err, clipstring.ErrInvalidLength)),
	)
}

func TestText(t *testing.T) {
	var clip clipstring.ClipString
	var bits clipstring.BitString

	it.Then(t).Should(
		it.Nil(clip.UnmarshalText([]byte("AB"))),
		it.Nil(bits.UnmarshalText([]byte("000001000000"))),
		it.Equal(clip.String(), "AB"),
		it.Equal(bits.String(), "000001000000"),
		it.True(clip.UnmarshalText([]byte(" AB")) != nil),
		it.True(bits.UnmarshalText([]byte("0000 0")) != nil),
	)

	it.Then(t).Should(
		it.Equal(clip, clipstring.ClipString("AB")),
		it.Equal(bits, clipstring.BitString("000001000000")),
	)
}
