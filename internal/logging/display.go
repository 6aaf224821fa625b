package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	infoColorFG  = pterm.FgLightGreen
	warnColorFG  = pterm.FgYellow
)

var compileMsgStrings = map[int]string{
	LMKName:   "Name",
	LMKTyping: "Type",
	LMKSyntax: "Syntax",
	LMKUsage:  "Usage",
}

// display prints a compile message banner (with the start line and
// column when a position is attached), then the message. The source text
// at that position is not printed.
func (cm *CompileMessage) display() {
	cm.displayBanner()
	fmt.Println(cm.Message)
}

func (cm *CompileMessage) displayBanner() {
	fmt.Print("\n-- ")
	kindStr := compileMsgStrings[cm.Kind]
	errorStyleBG.Print(kindStr + " Error")
	fmt.Print(" ")

	if cm.Position != nil {
		infoColorFG.Printf("line %d, col %d\n", cm.Position.StartLn, cm.Position.StartCol)
	} else {
		fmt.Println()
	}
}

func displayFatalError(msg string) {
	fmt.Print("\n")
	errorStyleBG.Print("Fatal Error ")
	errorColorFG.Println(" " + msg)
	infoColorFG.Println(strings.TrimSpace(`
This is an invariant violation: a prior pass produced a tree the
codegen pass cannot act on. This indicates a compiler bug.`))
}

// PrintErrorMessage prints a labeled CLI-level error (project load
// failures, bad arguments) -- distinct from CompileMessage, which is for
// diagnostics about the source program itself.
func PrintErrorMessage(label string, err error) {
	errorStyleBG.Print(" " + label + " ")
	errorColorFG.Println(" " + err.Error())
}

// PrintInfoMessage prints a labeled informational line, eg. `version`.
func PrintInfoMessage(label, message string) {
	infoColorFG.Print(label + ": ")
	fmt.Println(message)
}

func displaySummary(errorCount, warningCount int) {
	fmt.Print("\n")
	if errorCount == 0 {
		infoColorFG.Print("All done! ")
	} else {
		errorColorFG.Print("Compilation failed. ")
	}

	fmt.Print("(")
	if errorCount == 0 {
		infoColorFG.Print(0)
	} else {
		errorColorFG.Print(errorCount)
	}
	fmt.Print(" errors, ")
	if warningCount == 0 {
		infoColorFG.Print(0)
	} else {
		warnColorFG.Print(warningCount)
	}
	fmt.Println(" warnings)")
}
