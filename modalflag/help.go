// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"strings"
)

// print help for the current mode to the Output writer
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var defaults strings.Builder
	md.flags.SetOutput(&defaults)
	md.flags.PrintDefaults()

	var s strings.Builder

	if defaults.Len() == 0 && len(md.subModes) == 0 && md.additionalHelp == "" {
		s.WriteString("No help available")
		if p := md.Path(); p != "" {
			s.WriteString(fmt.Sprintf(" for %s mode", p))
		}
		s.WriteString("\n")
		md.Output.Write([]byte(s.String()))
		return
	}

	if p := md.Path(); p != "" {
		s.WriteString(fmt.Sprintf("Usage for %s mode:\n", p))
	} else {
		s.WriteString("Usage:\n")
	}

	s.WriteString(defaults.String())

	if len(md.subModes) > 0 {
		if defaults.Len() > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(md.subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", md.subModes[0]))
	}

	if md.additionalHelp != "" {
		s.WriteString("\n")
		s.WriteString(md.additionalHelp)
		s.WriteString("\n")
	}

	md.Output.Write([]byte(s.String()))
}
