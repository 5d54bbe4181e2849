package urlcheck

import (
	"fmt"
	"sync"
)

// defaultBatchWorkers bounds batch fan-out. Items are independent pure
// computations, so width only trades latency for goroutines.
const defaultBatchWorkers = 4

// BatchItem pairs one input with the outcome of validating it. Exactly one
// of Result and Error is non-nil.
type BatchItem struct {
	URL    string           `json:"url"`
	Result *Result          `json:"result"`
	Error  *ValidationError `json:"error"`
}

// ValidateMany validates each input independently and returns outcomes in
// input order. One item's rejection never affects the others; an empty
// slice yields an empty (non-nil) slice.
func (v *Validator) ValidateMany(inputs []string) []BatchItem {
	values := make([]interface{}, len(inputs))
	for i, in := range inputs {
		values[i] = in
	}
	return v.ValidateValues(values)
}

// ValidateValues is ValidateMany over loosely typed elements, as delivered
// by JSON decoding. Non-string elements fail per-item with INVALID_TYPE.
func (v *Validator) ValidateValues(inputs []interface{}) []BatchItem {
	items := make([]BatchItem, len(inputs))
	if len(inputs) == 0 {
		return items
	}

	workers := v.workers
	if workers > len(inputs) {
		workers = len(inputs)
	}

	// Fan out by index and write by index: output order is structural,
	// never a race between workers.
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				items[i] = v.validateItem(inputs[i])
			}
		}()
	}
	for i := range inputs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return items
}

// ValidateBatch guards the loosely typed batch entrypoint: anything that is
// not an array fails as a whole with a single type error, before any
// per-item work.
func (v *Validator) ValidateBatch(input interface{}) ([]BatchItem, *ValidationError) {
	switch in := input.(type) {
	case []string:
		return v.ValidateMany(in), nil
	case []interface{}:
		return v.ValidateValues(in), nil
	default:
		return nil, newError(CodeInvalidType, "urls must be an array, got %T", input)
	}
}

func (v *Validator) validateItem(input interface{}) BatchItem {
	urlStr, ok := input.(string)
	if !ok {
		urlStr = fmt.Sprint(input)
	}

	result, verr := v.Validate(input)
	return BatchItem{URL: urlStr, Result: result, Error: verr}
}
