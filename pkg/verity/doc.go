// Package verity classifies news text as FAKE or REAL with a pre-trained
// text vectorizer and classifier loaded from disk.
//
// Quick start:
//
//	v, err := verity.New(verity.WithModelDir("model/"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Close()
//
//	p, _ := v.Detect("Scientists discover new planet similar to Earth")
//	fmt.Println(p.Label, p.Probability) // REAL 0.959
//
// A Verity instance is safe for concurrent use. Create once, reuse across
// requests.
package verity
