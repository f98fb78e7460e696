package song

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
)

// Validate checks the structural invariants of a document, typically one
// just decoded from disk. Errors are criterio field errors keyed by path,
// e.g. "sections[1].bars[0].subdivision".
func (s *Song) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if len(s.Sections) == 0 {
		errs = errs.Append("sections", errors.New("song must have at least one section"))
	}

	for i, sec := range s.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)

		if sec.Wrap < 1 {
			errs = errs.Append(prefix+".wrap", fmt.Errorf("must be at least 1, got %d", sec.Wrap))
		}
		if len(sec.Bars) == 0 {
			errs = errs.Append(prefix+".bars", errors.New("section must have at least one bar"))
		}

		for j, bar := range sec.Bars {
			bprefix := fmt.Sprintf("%s.bars[%d]", prefix, j)

			if bar.Beats < 1 {
				errs = errs.Append(bprefix+".beats", fmt.Errorf("must be at least 1, got %d", bar.Beats))
			}
			if !ValidSubdivision(bar.Subdivision) {
				errs = errs.Append(bprefix+".subdivision",
					fmt.Errorf("must be a power of two between 1 and %d, got %d", MaxSubdivision, bar.Subdivision))
			}

			for _, k := range bar.Indices() {
				field := fmt.Sprintf("%s.chords[%d]", bprefix, k)
				if k < 0 || k >= bar.Subdivision {
					errs = errs.Append(field, fmt.Errorf("%w: subdivision is %d", ErrSlotOutOfRange, bar.Subdivision))
					continue
				}
				if err := bar.Slots[k].Validate(); err != nil {
					errs = errs.Append(field, err)
				}
			}
		}
	}

	return errs.ToError()
}
