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
package screen

import (
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	kalk "github.com/kalk-dev/kalk/types"
)

const (
	cellWidth  = 7
	cellHeight = 2 // one row of label, one row of spacing
)

// A cell is a keypad button with its rendered position, kept for
// mouse hit-testing.
type cell struct {
	button kalk.Button
	x, y   int
}

// The Screen draws the calculator and turns terminal input into
// events for the Commander.
type Screen struct {
	size  kalk.Size
	cells []cell
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

// Interrupt wakes a blocked GetNextEvent; the commander uses it to end
// the error flash.
func (s *Screen) Interrupt() {
	termbox.Interrupt()
}

func (s *Screen) Render(c kalk.Calculator, cmd kalk.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize kalk.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	width := cellWidth * len(kalk.Keypad[0])
	left := (screenSize.Cols - width) / 2
	if left < 0 {
		left = 0
	}

	s.renderDisplay(c, left, width)
	s.renderKeypad(left)
	s.renderMessageBar(cmd)
	termbox.HideCursor()
	termbox.Flush()
}

// renderDisplay draws the display line right-aligned in a reverse-video
// strip above the keypad.
func (s *Screen) renderDisplay(c kalk.Calculator, left, width int) {
	for x := left; x < left+width; x++ {
		termbox.SetCell(x, 1, ' ', termbox.ColorBlack, termbox.ColorWhite)
	}
	text := c.Display()
	x := left + width - runewidth.StringWidth(text) - 1
	if x < left {
		x = left
	}
	for _, ch := range text {
		termbox.SetCell(x, 1, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) renderKeypad(left int) {
	s.cells = s.cells[:0]
	for i, row := range kalk.Keypad {
		y := 3 + i*cellHeight
		for j, button := range row {
			x := left + j*cellWidth
			s.cells = append(s.cells, cell{button: button, x: x, y: y})
			label := button.Label
			pad := (cellWidth - runewidth.StringWidth(label)) / 2
			col := x + pad
			for _, ch := range label {
				termbox.SetCell(col, y, ch, termbox.ColorWhite, termbox.ColorBlack)
				col += runewidth.RuneWidth(ch)
			}
		}
	}
}

func (s *Screen) renderMessageBar(cmd kalk.Commander) {
	line := cmd.GetMessage()
	if line == "" {
		line = "enter =  c clear  n +/-  p %  q quit"
	}
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	for x, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
	}
}

// buttonAt hit-tests a mouse click against the keypad cells.
func (s *Screen) buttonAt(x, y int) (kalk.Button, bool) {
	for _, c := range s.cells {
		if y == c.y && x >= c.x && x < c.x+cellWidth {
			return c.button, true
		}
	}
	return kalk.Button{}, false
}

func (s *Screen) GetNextEvent() *kalk.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &kalk.Event{Type: kalk.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventMouse:
		if event.Key == termbox.MouseLeft {
			if button, ok := s.buttonAt(event.MouseX, event.MouseY); ok {
				return &kalk.Event{Type: kalk.EventCommand, Command: button.Command, Ch: button.Ch}
			}
		}
		return &kalk.Event{Type: kalk.EventUnsupported}
	case termbox.EventResize:
		termbox.Flush()
		return &kalk.Event{Type: kalk.EventResize}
	case termbox.EventInterrupt:
		return &kalk.Event{Type: kalk.EventInterrupt}
	default:
		return &kalk.Event{Type: kalk.EventUnsupported}
	}
}

func key(k termbox.Key) kalk.Key {
	switch k {
	case termbox.KeyEnter:
		return kalk.KeyEnter
	case termbox.KeyEsc:
		return kalk.KeyEsc
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return kalk.KeyBackspace2
	case termbox.KeySpace:
		return kalk.KeySpace
	case termbox.KeyCtrlD:
		return kalk.KeyCtrlD
	case termbox.KeyCtrlQ:
		return kalk.KeyCtrlQ
	default:
		return kalk.KeyUnsupported
	}
}
