package verity_test

import (
	"fmt"
	"log"
	"os"

	"github.com/crimson-sun/verity/internal/engine/testdata"
	"github.com/crimson-sun/verity/pkg/verity"
)

func Example() {
	dir, err := os.MkdirTemp("", "verity-model")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)
	if err := testdata.WriteModelDir(dir); err != nil {
		log.Fatal(err)
	}

	v, err := verity.New(verity.WithModelDir(dir))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	p, err := v.Detect("Scientists discover new planet similar to Earth")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %.3f\n", p.Label, p.Probability)
	// Output:
	// REAL 0.959
}
