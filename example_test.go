package hammingheap_test

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/hammingheap"
)

func Example() {
	ctx := context.Background()

	f, err := hammingheap.New(8)
	if err != nil {
		panic(err)
	}
	for _, code := range []byte{0b0000_0000, 0b0000_0111, 0b1111_1111, 0b0000_0011} {
		if _, err := f.Add(ctx, []byte{code}); err != nil {
			panic(err)
		}
	}

	results, err := f.Search(ctx, []byte{0b0000_0011}, 2)
	if err != nil {
		panic(err)
	}
	for _, r := range results {
		fmt.Println(r.ID, r.Distance)
	}

	filtered, err := f.Search(ctx, []byte{0b0000_0011}, 1, hammingheap.WithFilter(roaring.BitmapOf(2)))
	if err != nil {
		panic(err)
	}
	fmt.Println(filtered[0].ID, filtered[0].Distance)
	// Output:
	// 3 0
	// 1 1
	// 2 6
}
