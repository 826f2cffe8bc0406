package pdf

import "strings"

// wrapText parte txt en líneas que caben en width, cortando por palabras.
// Una palabra más ancha que la columna se corta por caracteres para que
// ninguna línea desborde la celda.
func wrapText(mz Measurer, txt string, s Style, width float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, w := range words {
		if mz.Width(w, s) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, breakWord(mz, w, s, width)...)
			continue
		}
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if mz.Width(candidate, s) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func breakWord(mz Measurer, word string, s Style, width float64) []string {
	var lines []string
	runes := []rune(word)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && mz.Width(string(runes[start:end+1]), s) <= width {
			end++
		}
		lines = append(lines, string(runes[start:end]))
		start = end
	}
	return lines
}

// clampLines limita el texto envuelto a max líneas, agregando una elipsis
// a la última cuando hubo recorte.
func clampLines(lines []string, max int) []string {
	if max <= 0 || len(lines) <= max {
		return lines
	}
	out := make([]string, max)
	copy(out, lines[:max])
	out[max-1] += "..."
	return out
}
