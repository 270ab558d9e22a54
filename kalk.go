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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kalk-dev/kalk/calc"
	"github.com/kalk-dev/kalk/commander"
	"github.com/kalk-dev/kalk/expr"
	"github.com/kalk-dev/kalk/screen"
)

func main() {

	var expression string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "-e", "--eval": // evaluate one expression and exit
			i++
			if i < len(os.Args) {
				expression = os.Args[i]
			} else {
				log.Output(1, "No expression specified for the -e option")
				return
			}
		default:
			fmt.Fprintf(os.Stderr, "usage: kalk [-e expression]\n")
			os.Exit(2)
		}
	}

	if expression != "" {
		// Evaluate an expression given on the command line and exit.
		node, err := expr.Parse(expr.Normalize(expression))
		if err == nil {
			var v expr.Number
			v, err = expr.Eval(node)
			if err == nil {
				fmt.Println(v)
				return
			}
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// The calculator manages all expression editing and evaluation.
	k := calc.NewCalculator()

	// The commander converts user inputs into commands for the calculator.
	c := commander.NewCommander(k)

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()
	c.SetInterrupter(s)

	// Open a log file; the terminal belongs to the screen.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.kalklog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	log.SetOutput(f)
	defer f.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(k, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
