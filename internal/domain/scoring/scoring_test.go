package scoring_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/okian/sibyl/internal/domain/model"
	scoring "github.com/okian/sibyl/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLinearScorer_Predict(t *testing.T) {
	Convey("Given a scorer with injected unit weights", t, func() {
		weights := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
		scorer := scoring.NewLinearScorer(scoring.WithWeights(weights))

		Convey("When predicting a zero vector", func() {
			result, err := scorer.Predict(context.Background(), make(model.FeatureVector, 10))

			Convey("Then prediction and confidence should both be zero", func() {
				So(err, ShouldBeNil)
				So(result.Prediction, ShouldEqual, 0.0)
				So(result.Confidence, ShouldEqual, 0.0)
			})
		})

		Convey("When predicting a vector that exercises only the first weight", func() {
			features := model.FeatureVector{3, 9, 9, 9, 9, 9, 9, 9, 9, 9}
			result, err := scorer.Predict(context.Background(), features)

			Convey("Then the prediction should be the dot product", func() {
				So(err, ShouldBeNil)
				So(result.Prediction, ShouldEqual, 3.0)
			})

			Convey("And confidence should be |prediction| / 10", func() {
				So(result.Confidence, ShouldAlmostEqual, 0.3, 1e-12)
			})
		})

		Convey("When the prediction magnitude exceeds the saturation point", func() {
			features := model.FeatureVector{-42, 0, 0, 0, 0, 0, 0, 0, 0, 0}
			result, err := scorer.Predict(context.Background(), features)

			Convey("Then confidence should saturate at 0.95", func() {
				So(err, ShouldBeNil)
				So(result.Prediction, ShouldEqual, -42.0)
				So(result.Confidence, ShouldEqual, 0.95)
			})
		})

		Convey("When predictions grow in magnitude", func() {
			Convey("Then confidence should be non-decreasing until saturation", func() {
				prev := -1.0
				for _, x := range []float64{0, 0.5, 1, 2, 5, 9.5, 12, 100} {
					result, err := scorer.Predict(context.Background(), model.FeatureVector{x, 0, 0, 0, 0, 0, 0, 0, 0, 0})
					So(err, ShouldBeNil)
					So(result.Confidence, ShouldBeGreaterThanOrEqualTo, prev)
					So(result.Confidence, ShouldBeLessThanOrEqualTo, 0.95)
					prev = result.Confidence
				}
			})
		})

		Convey("When predicting the same vector twice", func() {
			features := model.FeatureVector{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
			first, err1 := scorer.Predict(context.Background(), features)
			second, err2 := scorer.Predict(context.Background(), features)

			Convey("Then the results should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.Prediction, ShouldEqual, second.Prediction)
				So(first.Confidence, ShouldEqual, second.Confidence)
			})
		})
	})

	Convey("Given a scorer with randomly initialized weights", t, func() {
		scorer := scoring.NewLinearScorer()

		Convey("Then its dimension should default to 10", func() {
			So(scorer.Dimension(), ShouldEqual, 10)
		})

		Convey("When predicting a zero vector", func() {
			result, err := scorer.Predict(context.Background(), make(model.FeatureVector, 10))

			Convey("Then the result should be zero regardless of weights", func() {
				So(err, ShouldBeNil)
				So(result.Prediction, ShouldEqual, 0.0)
				So(result.Confidence, ShouldEqual, 0.0)
			})
		})

		Convey("When predicting any valid vector", func() {
			features := model.FeatureVector{1, -1, 2, -2, 3, -3, 4, -4, 5, -5}
			result, err := scorer.Predict(context.Background(), features)

			Convey("Then confidence should stay within [0, 0.95]", func() {
				So(err, ShouldBeNil)
				So(result.Confidence, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(result.Confidence, ShouldBeLessThanOrEqualTo, 0.95)
				So(math.IsNaN(result.Prediction), ShouldBeFalse)
			})
		})
	})

	Convey("Given two scorers built with the same seed", t, func() {
		a := scoring.NewLinearScorer(scoring.WithSeed(7))
		b := scoring.NewLinearScorer(scoring.WithSeed(7))

		Convey("Then their weight vectors should match", func() {
			So(a.Weights(), ShouldResemble, b.Weights())
		})
	})

	Convey("Given a scorer and a wrong-length vector", t, func() {
		scorer := scoring.NewLinearScorer(scoring.WithSeed(1))
		_, err := scorer.Predict(context.Background(), model.FeatureVector{1, 2, 3})

		Convey("Then predict should fail with the mismatch kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, model.ErrDimensionMismatch), ShouldBeTrue)

			var mismatch *model.DimensionMismatchError
			So(errors.As(err, &mismatch), ShouldBeTrue)
			So(mismatch.Expected, ShouldEqual, 10)
			So(mismatch.Actual, ShouldEqual, 3)
		})
	})

	Convey("Given a cancelled context", t, func() {
		scorer := scoring.NewLinearScorer(scoring.WithSeed(1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := scorer.Predict(ctx, make(model.FeatureVector, 10))

		Convey("Then predict should return the context error", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestNewLinearScorer_Options(t *testing.T) {
	Convey("Given the WithDimension option", t, func() {
		scorer := scoring.NewLinearScorer(scoring.WithDimension(4), scoring.WithSeed(3))

		Convey("Then the weight vector should match the dimension", func() {
			So(scorer.Dimension(), ShouldEqual, 4)
			So(len(scorer.Weights()), ShouldEqual, 4)
		})
	})

	Convey("Given injected weights", t, func() {
		weights := []float64{0.5, -0.5}
		scorer := scoring.NewLinearScorer(scoring.WithWeights(weights))

		Convey("Then the scorer should copy them", func() {
			So(scorer.Dimension(), ShouldEqual, 2)
			weights[0] = 99 // mutating the caller's slice must not leak in
			So(scorer.Weights(), ShouldResemble, []float64{0.5, -0.5})
		})
	})
}
