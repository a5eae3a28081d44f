package imports

// Pure position arithmetic over the unit's source text. These never mutate
// anything; the edit computation stays independently testable.

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// repairSpan widens an edit so the result stays cleanly formatted: a
// deletion that leaves a line blank consumes the whole line, and a deletion
// at the end of a line takes the trailing blanks with it.
func repairSpan(src []byte, a Action) Action {
	start := int(a.Span.Start)
	end := int(a.Span.End)

	left := start - 1
	for left >= 0 && isBlank(src[left]) {
		left--
	}
	leftEmpty := left < 0 || src[left] == '\n'

	right := end
	for right < len(src) && isBlank(src[right]) {
		right++
	}
	rightEmpty := right >= len(src) || src[right] == '\n'

	if leftEmpty && rightEmpty && a.Text == "" {
		// the whole line is going away
		a.Span.Start = Position(left + 1)
		if right < len(src) {
			right++
		}
		a.Span.End = Position(right)
	} else if rightEmpty {
		a.Span.End = Position(right)
	}
	return a
}

// scanBackComma finds the start of the comma-and-gap run that ends just
// before from, so deleting [result, from) removes the separator after the
// previous list element.
func scanBackComma(src []byte, from Position) Position {
	i := int(from) - 1
	for i >= 0 && isSpace(src[i]) {
		i--
	}
	if i >= 0 && src[i] == ',' {
		i--
		for i >= 0 && isSpace(src[i]) {
			i--
		}
	}
	return Position(i + 1)
}
