// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package terminal

// Raw control bytes a Key can carry through unchanged.
const (
	Nul       = 0
	Bell      = 7
	Backspace = 8 // ^H
	Tab       = 9
	Newline   = 10
	CR        = 13
	Esc       = 27
	Del       = 127
)

// Logical keys live past the ASCII range so they can never collide with a
// literal byte read from the terminal.
const (
	ArrowLeft = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	PageUp
	PageDown
	Home
	End
	Delete
)

// Ctrl mirrors the CTRL_KEY(k) macro: it masks off every bit but the low
// five, which is how a terminal encodes a control chord for a letter key.
func Ctrl(k byte) int {
	return int(k) & 0x1f
}
