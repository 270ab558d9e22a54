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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalk-dev/kalk/calc"
	kalk "github.com/kalk-dev/kalk/types"
)

func press(t *testing.T, c *Commander, chars string) {
	t.Helper()
	for _, ch := range chars {
		require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventKey, Ch: ch}))
	}
}

func pressKey(t *testing.T, c *Commander, key kalk.Key) {
	t.Helper()
	require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventKey, Key: key}))
}

func setup() (*calc.Calculator, *Commander) {
	k := calc.NewCalculator()
	return k, NewCommander(k)
}

func TestKeyboardEvaluation(t *testing.T) {
	k, c := setup()
	press(t, c, "7+3*2")
	assert.Equal(t, "7+3×2", k.Text()) // * maps to the display glyph
	pressKey(t, c, kalk.KeyEnter)
	assert.Equal(t, "13", k.Text())
	assert.Equal(t, "", c.GetMessage())
}

func TestKeyboardGlyphMapping(t *testing.T) {
	k, c := setup()
	press(t, c, "9/3")
	assert.Equal(t, "9÷3", k.Text())
	press(t, c, "=")
	assert.Equal(t, "3", k.Text())
}

func TestErrorFlashPreservesBuffer(t *testing.T) {
	k, c := setup()
	press(t, c, "9/0")
	pressKey(t, c, kalk.KeyEnter)
	assert.Equal(t, "9÷0", k.Text())
	assert.Equal(t, "Error", c.GetMessage())

	// an interrupt before the flash expires keeps the message
	require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventInterrupt}))
	assert.Equal(t, "Error", c.GetMessage())

	// the next keystroke reverts to the preserved buffer
	press(t, c, "1")
	assert.Equal(t, "", c.GetMessage())
	assert.Equal(t, "9÷01", k.Text())
}

func TestEditingKeys(t *testing.T) {
	k, c := setup()
	press(t, c, "12")
	pressKey(t, c, kalk.KeyBackspace2)
	assert.Equal(t, "1", k.Text())
	pressKey(t, c, kalk.KeyEsc)
	assert.Equal(t, "", k.Text())

	press(t, c, "5c")
	assert.Equal(t, "", k.Text())
}

func TestNegateAndPercentKeys(t *testing.T) {
	k, c := setup()
	press(t, c, "12+5n")
	assert.Equal(t, "12+-5", k.Text())

	k.Clear()
	press(t, c, "200p")
	assert.Equal(t, "2", k.Text())
}

func TestPercentKeyAppendsRemainderOperator(t *testing.T) {
	k, c := setup()
	press(t, c, "7%3=")
	assert.Equal(t, "1", k.Text())
}

func TestPowerKey(t *testing.T) {
	k, c := setup()
	press(t, c, "2^10=")
	assert.Equal(t, "1024", k.Text())
}

func TestQuit(t *testing.T) {
	_, c := setup()
	assert.True(t, c.IsRunning())
	press(t, c, "q")
	assert.False(t, c.IsRunning())

	_, c = setup()
	pressKey(t, c, kalk.KeyCtrlQ)
	assert.False(t, c.IsRunning())
}

func TestKeypadCommands(t *testing.T) {
	k, c := setup()
	buttons := []kalk.Event{
		{Type: kalk.EventCommand, Command: kalk.CommandAppend, Ch: '7'},
		{Type: kalk.EventCommand, Command: kalk.CommandAppend, Ch: '+'},
		{Type: kalk.EventCommand, Command: kalk.CommandAppend, Ch: '3'},
		{Type: kalk.EventCommand, Command: kalk.CommandAppend, Ch: '×'},
		{Type: kalk.EventCommand, Command: kalk.CommandAppend, Ch: '2'},
		{Type: kalk.EventCommand, Command: kalk.CommandEvaluate},
	}
	for i := range buttons {
		require.NoError(t, c.ProcessEvent(&buttons[i]))
	}
	assert.Equal(t, "13", k.Text())

	require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventCommand, Command: kalk.CommandNegate}))
	assert.Equal(t, "-13", k.Text())

	require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventCommand, Command: kalk.CommandBackspace}))
	assert.Equal(t, "-1", k.Text())

	require.NoError(t, c.ProcessEvent(&kalk.Event{Type: kalk.EventCommand, Command: kalk.CommandClear}))
	assert.Equal(t, "", k.Text())
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	k, c := setup()
	press(t, c, "zZ!")
	assert.Equal(t, "", k.Text())
	pressKey(t, c, kalk.KeySpace)
	assert.Equal(t, "", k.Text())
}
