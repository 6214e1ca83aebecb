package review

// Summary is the aggregate rating of one product.
type Summary struct {
	ProductID int
	Count     int
	Average   float64
	// Histogram[i] counts reviews rated i+1 stars
	Histogram [MaxRating]int
}

// Summarize aggregates the reviews of productID. With no reviews the
// average is exactly 0.
func Summarize(productID int, reviews []*Review) Summary {
	s := Summary{ProductID: productID}
	sum := 0
	for _, r := range reviews {
		if r.productID != productID {
			continue
		}
		s.Count++
		sum += r.rating.value
		s.Histogram[r.rating.value-1]++
	}
	if s.Count > 0 {
		s.Average = float64(sum) / float64(s.Count)
	}
	return s
}

// ForProduct filters reviews by product, keeping their order.
func ForProduct(productID int, reviews []*Review) []*Review {
	out := make([]*Review, 0)
	for _, r := range reviews {
		if r.productID == productID {
			out = append(out, r)
		}
	}
	return out
}
