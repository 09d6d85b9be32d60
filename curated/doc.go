// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error type used throughout the project. A
// curated error keeps the pattern it was created with, so call sites can
// test for a specific error with Is() or Has() against the same declared
// constant that created it, without string matching on rendered messages.
//
// Error messages follow the convention of being prefixed with the name of
// the package (or sub-system) that created them. The Error() function
// de-duplicates adjacent prefixes when errors wrap errors.
package curated
