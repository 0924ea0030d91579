package model_test

import (
	"errors"
	"testing"

	"github.com/okian/sibyl/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFeatureVector_Validate(t *testing.T) {
	Convey("Given a feature vector of the expected length", t, func() {
		v := make(model.FeatureVector, 10)

		Convey("Then validation should pass", func() {
			So(v.Validate(10), ShouldBeNil)
		})
	})

	Convey("Given a feature vector that is too short", t, func() {
		v := model.FeatureVector{1, 2, 3}
		err := v.Validate(10)

		Convey("Then validation should fail with the mismatch kind", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, model.ErrDimensionMismatch), ShouldBeTrue)
		})

		Convey("And the error should carry expected and actual lengths", func() {
			var mismatch *model.DimensionMismatchError
			So(errors.As(err, &mismatch), ShouldBeTrue)
			So(mismatch.Expected, ShouldEqual, 10)
			So(mismatch.Actual, ShouldEqual, 3)
			So(err.Error(), ShouldEqual, "expected 10 features, got 3")
		})
	})

	Convey("Given a nil feature vector", t, func() {
		var v model.FeatureVector
		err := v.Validate(10)

		Convey("Then validation should fail with actual length zero", func() {
			var mismatch *model.DimensionMismatchError
			So(errors.As(err, &mismatch), ShouldBeTrue)
			So(mismatch.Actual, ShouldEqual, 0)
		})
	})
}
