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
package commander

import (
	"fmt"
	"log"
	"strings"
	"time"

	kalk "github.com/kalk-dev/kalk/types"
)

// flashDuration is how long the "Error" indication stays on the
// message bar before the preserved expression is shown again.
const flashDuration = 1200 * time.Millisecond

// The Commander converts user input into commands for the Calculator.
type Commander struct {
	calc        kalk.Calculator
	interrupter kalk.Interrupter
	running     bool
	debug       bool // debug mode displays information about events
	message     string
	flashUntil  time.Time
}

func NewCommander(c kalk.Calculator) *Commander {
	return &Commander{calc: c, running: true}
}

// SetInterrupter gives the commander a way to wake the event loop when
// the error flash expires. Without one the flash still clears on the
// next event.
func (c *Commander) SetInterrupter(i kalk.Interrupter) {
	c.interrupter = i
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) ProcessEvent(event *kalk.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case kalk.EventKey:
		return c.processKey(event)
	case kalk.EventCommand:
		return c.perform(event.Command, event.Ch)
	case kalk.EventInterrupt:
		c.expireFlash()
		return nil
	default:
		return nil
	}
}

func (c *Commander) processKey(event *kalk.Event) error {
	if event.Key != 0 {
		switch event.Key {
		case kalk.KeyEnter:
			return c.perform(kalk.CommandEvaluate, 0)
		case kalk.KeyBackspace2:
			return c.perform(kalk.CommandBackspace, 0)
		case kalk.KeyEsc:
			return c.perform(kalk.CommandClear, 0)
		case kalk.KeyCtrlQ:
			return c.perform(kalk.CommandQuit, 0)
		case kalk.KeyCtrlD:
			c.debug = !c.debug
			if !c.debug {
				c.message = ""
			}
		}
		return nil
	}
	ch := event.Ch
	switch {
	// digits and operator characters append as typed; the keyboard's
	// * and / map to the display glyphs, and % appends the remainder
	// operator (the keypad button applies percent instead)
	case ch >= '0' && ch <= '9':
		return c.perform(kalk.CommandAppend, ch)
	case strings.ContainsRune(".+-()%^", ch):
		return c.perform(kalk.CommandAppend, ch)
	case ch == '*':
		return c.perform(kalk.CommandAppend, '×')
	case ch == '/':
		return c.perform(kalk.CommandAppend, '÷')
	case ch == '=':
		return c.perform(kalk.CommandEvaluate, 0)
	case ch == 'n' || ch == 'N':
		return c.perform(kalk.CommandNegate, 0)
	case ch == 'p' || ch == 'P':
		return c.perform(kalk.CommandPercent, 0)
	case ch == 'c' || ch == 'C':
		return c.perform(kalk.CommandClear, 0)
	case ch == 'q' || ch == 'Q':
		return c.perform(kalk.CommandQuit, 0)
	}
	return nil
}

func (c *Commander) perform(command kalk.Command, ch rune) error {
	c.clearFlash()
	switch command {
	case kalk.CommandAppend:
		c.calc.Append(ch)
	case kalk.CommandBackspace:
		c.calc.Backspace()
	case kalk.CommandClear:
		c.calc.Clear()
	case kalk.CommandNegate:
		c.calc.Negate()
	case kalk.CommandPercent:
		c.calc.Percent()
	case kalk.CommandEvaluate:
		if err := c.calc.Evaluate(); err != nil {
			log.Printf("evaluate %q: %v", c.calc.Text(), err)
			c.flash("Error")
		}
	case kalk.CommandQuit:
		c.running = false
	}
	return nil
}

// flash shows a transient message and schedules an interrupt so the
// event loop re-renders the preserved expression when it expires.
func (c *Commander) flash(message string) {
	c.message = message
	c.flashUntil = time.Now().Add(flashDuration)
	if c.interrupter != nil {
		time.AfterFunc(flashDuration, c.interrupter.Interrupt)
	}
}

func (c *Commander) clearFlash() {
	if !c.debug {
		c.message = ""
	}
	c.flashUntil = time.Time{}
}

func (c *Commander) expireFlash() {
	if !c.flashUntil.IsZero() && !time.Now().Before(c.flashUntil) {
		c.clearFlash()
	}
}
