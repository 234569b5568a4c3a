package car

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	biosym "github.com/rmera/biosym"
)

// Write serializes sys to w in car format: header lines verbatim (a minimal
// header is generated if the system carries none), the PBC record if the
// system is periodic, each molecule block followed by its end marker, and the
// guaranteed trailing end line.
func Write(w io.Writer, sys *biosym.System) error {
	if sys == nil {
		return biosym.CErrorf("car.Write: nil system")
	}
	out := bufio.NewWriter(w)
	header := sys.Header
	if len(header) == 0 {
		header = defaultHeader(sys.Box != nil)
	}
	for _, h := range header {
		fmt.Fprintln(out, h)
	}
	if sys.Box != nil {
		b := sys.Box
		fmt.Fprintf(out, "PBC %9.4f %9.4f %9.4f %9.4f %9.4f %9.4f (P1)\n", b.X, b.Y, b.Z, b.Alpha, b.Beta, b.Gamma)
	}
	for i := 0; i < sys.Len(); i++ {
		mol := sys.Mol(i)
		for j := 0; j < mol.Len(); j++ {
			at := mol.Atom(j)
			fmt.Fprintf(out, "%-5s %14.9f %14.9f %14.9f %-4s %-6d %-7s %-2s %8.4f\n",
				at.Name, mol.Coords.At(j, 0), mol.Coords.At(j, 1), mol.Coords.At(j, 2),
				at.MolName, at.MolID, at.FFType, at.Symbol, at.Charge)
		}
		fmt.Fprintln(out, "end")
	}
	if _, err := fmt.Fprintln(out, "end"); err != nil {
		return err
	}
	return out.Flush()
}

// WriteFile serializes sys to the file at path, overwriting it if it exists.
func WriteFile(path string, sys *biosym.System) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, sys)
}

func defaultHeader(periodic bool) []string {
	pbc := "PBC=OFF"
	if periodic {
		pbc = "PBC=ON"
	}
	return []string{
		"!BIOSYM archive 3",
		pbc,
		"CAR file written by biosym",
		"!DATE " + time.Now().Format("Mon Jan 02 15:04:05 2006"),
	}
}
