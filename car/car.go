//Package car reads and writes coordinate-archive (car) files: a verbatim
//header block, repeated molecule blocks of atom lines each terminated by an
//"end" marker, an optional periodic-boundary record and a final "end" line.
//Tokenization is whitespace-delimited and column-count-driven, not
//fixed-width.
package car

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	biosym "github.com/rmera/biosym"
)

//An atom line carries, in order: name, x, y, z, residue name, residue index,
//force-field type, element symbol and partial charge.
const atomFields = 9

// ReadFile reads the car file at path, which may be gzip- or
// zstd-compressed (".gz"/".zst" suffix). It returns the verbatim header
// lines, the raw molecule blocks in file order and the periodic box, or nil
// if the file has no PBC record.
func ReadFile(path string) ([]string, []*biosym.RawMolecule, *biosym.PBC, error) {
	f, err := biosym.OpenDecompressed(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// ReadSystem reads the car file at path and lifts it directly into a System.
func ReadSystem(path string) (*biosym.System, error) {
	header, blocks, box, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return biosym.SystemFromBlocks(header, blocks, box)
}

// Read parses a car file from r. The name is only used for error context and
// may be empty.
func Read(r io.Reader, name string) ([]string, []*biosym.RawMolecule, *biosym.PBC, error) {
	var header []string
	var blocks []*biosym.RawMolecule
	var box *biosym.PBC
	var current *biosym.RawMolecule
	inHeader := true
	nline := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nline++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		fields := strings.Fields(line)
		if inHeader {
			if len(fields) == 0 {
				continue
			}
			if !isPBCRecord(fields) && !isAtomShaped(fields) && fields[0] != "end" {
				header = append(header, line)
				continue
			}
			inHeader = false
		}
		switch {
		case len(fields) == 0:
			continue
		case strings.HasPrefix(line, "!"):
			//pure comment, does not affect block boundaries
			continue
		case fields[0] == "end":
			if current != nil {
				blocks = append(blocks, current)
				current = nil
				continue
			}
			//a second consecutive end terminates the file
			return header, blocks, box, nil
		case isPBCRecord(fields):
			var err error
			box, err = parsePBC(fields, name, nline, line)
			if err != nil {
				return nil, nil, nil, err
			}
		default:
			at, err := parseAtom(fields, name, nline, line)
			if err != nil {
				return nil, nil, nil, err
			}
			if current == nil {
				current = new(biosym.RawMolecule)
			}
			current.Atoms = append(current.Atoms, at)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	if current != nil {
		return nil, nil, nil, biosym.Parsef(name, nline, "", "molecule block with %d atoms has no end terminator (truncated file?)", len(current.Atoms))
	}
	return header, blocks, box, nil
}

// isPBCRecord reports whether the fields form a periodic-boundary record: the
// literal PBC token followed by at least six fields (lengths and angles).
// The "PBC=ON"/"PBC=OFF" header switches do not qualify.
func isPBCRecord(fields []string) bool {
	return fields[0] == "PBC" && len(fields) >= 7
}

// isAtomShaped reports whether the fields open like an atom record: a name
// followed by three numeric coordinates. Used only to find the end of the
// header. The column count is deliberately not checked here, so a malformed
// atom record still ends the header and gets reported by parseAtom instead of
// being absorbed as header text.
func isAtomShaped(fields []string) bool {
	if len(fields) < 4 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if _, err := strconv.ParseFloat(fields[i], 64); err != nil {
			return false
		}
	}
	return true
}

func parsePBC(fields []string, name string, nline int, line string) (*biosym.PBC, error) {
	nums := make([]float64, 6)
	for i := 0; i < 6; i++ {
		f, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, biosym.Parsef(name, nline, line, "PBC field %d is not numeric: %q", i+1, fields[i+1])
		}
		nums[i] = f
	}
	return &biosym.PBC{X: nums[0], Y: nums[1], Z: nums[2], Alpha: nums[3], Beta: nums[4], Gamma: nums[5]}, nil
}

func parseAtom(fields []string, name string, nline int, line string) (biosym.RawAtom, error) {
	var at biosym.RawAtom
	if len(fields) < atomFields {
		return at, biosym.Parsef(name, nline, line, "atom record has %d fields, %d required", len(fields), atomFields)
	}
	at.Name = fields[0]
	var err error
	coords := [3]*float64{&at.X, &at.Y, &at.Z}
	for i, c := range coords {
		*c, err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return at, biosym.Parsef(name, nline, line, "coordinate %d is not numeric: %q", i+1, fields[i+1])
		}
	}
	at.MolName = fields[4]
	at.MolID, err = strconv.Atoi(fields[5])
	if err != nil {
		return at, biosym.Parsef(name, nline, line, "residue index is not numeric: %q", fields[5])
	}
	at.FFType = fields[6]
	at.Symbol = fields[7]
	at.Charge, err = strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return at, biosym.Parsef(name, nline, line, "charge is not numeric: %q", fields[8])
	}
	return at, nil
}
