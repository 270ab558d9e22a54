//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package types

// Event types
const (
	EventKey = iota
	EventResize
	EventCommand
	EventInterrupt
	EventUnsupported
)

// Key identifies a special (non-character) key press.
type Key int

const (
	KeyUnsupported Key = iota
	KeyEnter
	KeyEsc
	KeyBackspace2
	KeySpace
	KeyCtrlD
	KeyCtrlQ
)

// Command identifies a calculator operation dispatched by the UI.
type Command int

const (
	CommandNone Command = iota
	CommandAppend
	CommandBackspace
	CommandClear
	CommandNegate
	CommandPercent
	CommandEvaluate
	CommandQuit
)

type Event struct {
	Type    int
	Key     Key
	Ch      rune
	Command Command
}

type Size struct {
	Rows int
	Cols int
}

// A Button is one cell of the on-screen keypad.
type Button struct {
	Label   string
	Command Command
	Ch      rune
}

// Keypad is the button grid shared by the screen, which renders it and
// hit-tests mouse clicks against it.
var Keypad = [][]Button{
	{
		{Label: "C", Command: CommandClear},
		{Label: "+/-", Command: CommandNegate},
		{Label: "%", Command: CommandPercent},
		{Label: "⌫", Command: CommandBackspace},
	},
	{
		{Label: "7", Command: CommandAppend, Ch: '7'},
		{Label: "8", Command: CommandAppend, Ch: '8'},
		{Label: "9", Command: CommandAppend, Ch: '9'},
		{Label: "÷", Command: CommandAppend, Ch: '÷'},
	},
	{
		{Label: "4", Command: CommandAppend, Ch: '4'},
		{Label: "5", Command: CommandAppend, Ch: '5'},
		{Label: "6", Command: CommandAppend, Ch: '6'},
		{Label: "×", Command: CommandAppend, Ch: '×'},
	},
	{
		{Label: "1", Command: CommandAppend, Ch: '1'},
		{Label: "2", Command: CommandAppend, Ch: '2'},
		{Label: "3", Command: CommandAppend, Ch: '3'},
		{Label: "-", Command: CommandAppend, Ch: '-'},
	},
	{
		{Label: "0", Command: CommandAppend, Ch: '0'},
		{Label: ".", Command: CommandAppend, Ch: '.'},
		{Label: "=", Command: CommandEvaluate},
		{Label: "+", Command: CommandAppend, Ch: '+'},
	},
}

type Calculator interface {
	Append(ch rune)
	Backspace()
	Clear()
	Negate()
	Percent()
	Evaluate() error
	Text() string
	Display() string
}

type Commander interface {
	IsRunning() bool
	GetMessage() string
}

// An Interrupter wakes a blocked event loop; the commander uses it to
// schedule the end of the transient error flash.
type Interrupter interface {
	Interrupt()
}
