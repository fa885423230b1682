package view

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"lssgal/internal/catalog"
)

func TestState(t *testing.T) {
	Convey("Given the redshift mode start-up state", t, func() {
		s := NewState(Redshift)

		Convey("It uses the documented defaults", func() {
			So(s.Center, ShouldEqual, 0.030)
			So(s.Width, ShouldEqual, 0.005)
			So(s.Alpha, ShouldEqual, 0.2)
			So(s.Visible, ShouldResemble, [catalog.NumSamples]bool{true, true, false, false})
			So(s.inBounds(Redshift), ShouldBeTrue)
		})

		Convey("Setters clamp to the slider bounds", func() {
			So(s.WithCenter(Redshift, 0.5).Center, ShouldEqual, 0.1)
			So(s.WithCenter(Redshift, -1).Center, ShouldEqual, 0)
			So(s.WithWidth(Redshift, -0.01).Width, ShouldEqual, 0)
			So(s.WithAlpha(Redshift, 2).Alpha, ShouldEqual, 1)
			So(s.WithCenter(Redshift, 7).inBounds(Redshift), ShouldBeTrue)
		})

		Convey("Transitions do not modify the receiver", func() {
			_ = s.WithCenter(Redshift, 0.07).Toggle(2)
			So(s, ShouldResemble, NewState(Redshift))
		})

		Convey("Reset restores the defaults from any slider state", func() {
			moved := s.WithCenter(Redshift, 0.08).WithWidth(Redshift, 0.02).WithAlpha(Redshift, 0.9)
			r := moved.Reset(Redshift)
			So(r.Center, ShouldEqual, 0.030)
			So(r.Width, ShouldEqual, 0.005)
			So(r.Alpha, ShouldEqual, 0.2)
		})

		Convey("Reset leaves visibility untouched", func() {
			toggled := s.Toggle(catalog.Background).Toggle(catalog.Pairs)
			So(toggled.Reset(Redshift).Visible, ShouldResemble, toggled.Visible)
		})

		Convey("Toggling twice restores visibility and nothing else changes", func() {
			moved := s.WithCenter(Redshift, 0.05)
			for i := 0; i < catalog.NumSamples; i++ {
				once := moved.Toggle(i)
				So(once.Visible[i], ShouldNotEqual, moved.Visible[i])
				So(SameSlice(once, moved), ShouldBeTrue)
				So(once.Toggle(i), ShouldResemble, moved)
			}
		})

		Convey("Out of range toggles are ignored", func() {
			So(s.Toggle(-1), ShouldResemble, s)
			So(s.Toggle(catalog.NumSamples), ShouldResemble, s)
		})
	})

	Convey("The declination mode resets to its own defaults", t, func() {
		r := NewState(Redshift).Reset(Declination)
		So(r.Center, ShouldEqual, 0)
		So(r.Width, ShouldEqual, 5)
		So(r.Alpha, ShouldEqual, 0.2)
	})
}

func TestMode(t *testing.T) {
	Convey("Modes are found by name", t, func() {
		m, err := ModeByName("declination")
		So(err, ShouldBeNil)
		So(m.Axis, ShouldEqual, catalog.AxisDec)

		_, err = ModeByName("ra")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"ra"`)
		So(fmt.Sprintf("%+v", err), ShouldContainSubstring, "view.ModeByName")
	})

	Convey("Captions follow the mode precision", t, func() {
		So(Redshift.Caption(NewState(Redshift)), ShouldEqual, "Mollweide projection within 0.030 < z < 0.035")
		So(Declination.Caption(NewState(Declination)), ShouldEqual, "Wedge diagram within 0.0° < Dec. < 5.0°")

		s := NewState(Redshift).WithCenter(Redshift, 0.0304).WithWidth(Redshift, 0.0101)
		So(Redshift.Caption(s), ShouldEqual, "Mollweide projection within 0.030 < z < 0.040")
	})
}
