// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tui runs a form session in the terminal.

# Drivers

PromptDriver is the seam between the runner and the terminal:

	driver := tui.NewSurveyDriver()

The survey/v2 driver shows select questions as pick lists, the bio as a
multi-line editor and everything else as a single-line input. Ctrl-C maps
to ErrAborted.

# Running

	id, err := tui.NewRunner(driver, session).Run(ctx)

Each step prints "Question i of N", prompts for the current answer (and for
genderOther when gender is "Other"), shows the field error once the field
is touched, then offers Next / Previous / Submit / Clear draft / Quit.
*/
package tui
