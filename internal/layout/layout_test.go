package layout_test

import (
	"fmt"

	"github.com/san-kum/figural/internal/figural"
	"github.com/san-kum/figural/internal/geometry"
	"github.com/san-kum/figural/internal/layout"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const distance = 0.5

var _ = Describe("Of", func() {
	It("rejects indices below 1", func() {
		for _, f := range figural.Families() {
			for _, n := range []int{0, -1} {
				_, err := layout.Of(f, n, distance, true, false)
				Expect(err).To(MatchError(figural.ErrInvalidIndex))
			}
		}
	})

	It("emits exactly the closed-form number of points", func() {
		for _, f := range figural.Families() {
			for n := 1; n <= 50; n++ {
				lay, err := layout.Of(f, n, distance, false, false)
				Expect(err).NotTo(HaveOccurred())
				Expect(lay.Points).To(HaveLen(int(f.Ith(n))),
					"%s N=%d", f.Name(), n)
				Expect(lay.Value).To(Equal(f.Ith(n)))
			}
		}
	})

	Context("triangular", func() {
		tri := figural.Triangular{}

		It("starts with the base row at the origin", func() {
			lay, err := layout.Of(tri, 4, distance, false, false)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 4; i++ {
				Expect(lay.Points[i].Y).To(BeNumerically("~", 0, 1e-9))
				Expect(lay.Points[i].X).To(BeNumerically("~", float64(i)*distance, 1e-9))
			}
			// Second row shifts by (distance/2, distance).
			Expect(lay.Points[4].X).To(BeNumerically("~", distance/2, 1e-9))
			Expect(lay.Points[4].Y).To(BeNumerically("~", distance, 1e-9))
		})

		It("draws one closed triangle outline for N > 1", func() {
			lay, err := layout.Of(tri, 5, distance, true, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(lay.Outlines).To(HaveLen(1))

			side := 4 * distance
			loop := lay.Outlines[0]
			Expect(loop).To(HaveLen(4))
			Expect(loop[0]).To(Equal(geometry.Point{X: 0, Y: 0}))
			Expect(loop[1]).To(Equal(geometry.Point{X: side, Y: 0}))
			Expect(loop[2]).To(Equal(geometry.Point{X: side / 2, Y: side}))
			Expect(loop[3]).To(Equal(loop[0]), "outline must close")
		})

		It("has no outline for a single dot", func() {
			lay, err := layout.Of(tri, 1, distance, true, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(lay.Outlines).To(BeEmpty())
		})

		It("anchors the label centered below the base", func() {
			lay, err := layout.Of(tri, 5, distance, false, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(lay.Label).NotTo(BeNil())
			Expect(lay.Label.Text).To(Equal("T(5) = 15"))
			Expect(lay.Label.Anchor.X).To(BeNumerically("~", 4*distance/2, 1e-9))
			Expect(lay.Label.Anchor.Y).To(BeNumerically("~", -distance/2, 1e-9))
		})
	})

	Context("pentagonal", func() {
		pent := figural.Pentagonal{}

		It("emits only the apex for N = 1", func() {
			lay, err := layout.Of(pent, 1, distance, true, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(lay.Points).To(HaveLen(1))
			Expect(lay.Points[0]).To(Equal(geometry.Point{X: 0, Y: 0}))
			Expect(lay.Outlines).To(BeEmpty())
		})

		It("draws one nested pentagon outline per ring", func() {
			lay, err := layout.Of(pent, 6, distance, true, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(lay.Outlines).To(HaveLen(5))
			for _, loop := range lay.Outlines {
				Expect(loop).To(HaveLen(6))
				Expect(loop[0]).To(Equal(geometry.Point{X: 0, Y: 0}))
				Expect(loop[5]).To(Equal(loop[0]), "outline must close")
			}
		})

		It("keeps every point strictly below or at the apex", func() {
			lay, err := layout.Of(pent, 8, distance, false, false)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range lay.Points {
				Expect(p.Y).To(BeNumerically("<=", 1e-9))
			}
		})

		It("emits no duplicate points within a ring", func() {
			for n := 2; n <= 12; n++ {
				seen := map[string]bool{}
				lay, err := layout.Of(pent, n, distance, false, false)
				Expect(err).NotTo(HaveOccurred())
				for _, p := range lay.Points {
					key := fmt.Sprintf("%.6f,%.6f", p.X, p.Y)
					Expect(seen[key]).To(BeFalse(), "duplicate point %+v at N=%d", p, n)
					seen[key] = true
				}
			}
		})
	})
})

var _ = Describe("Compose", func() {
	It("validates the range", func() {
		tri := figural.Triangular{}

		_, err := layout.Compose(tri, 0, 5, distance, 4)
		Expect(err).To(MatchError(figural.ErrInvalidIndex))

		_, err = layout.Compose(tri, 5, 3, distance, 4)
		Expect(err).To(MatchError(figural.ErrInvalidRange))

		_, err = layout.Compose(tri, 1, 5, distance, 0)
		Expect(err).To(MatchError(figural.ErrInvalidRange))
	})

	It("computes the grid shape from the column count", func() {
		grid, err := layout.Compose(figural.Triangular{}, 1, 10, distance, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid.Rows).To(Equal(3))
		Expect(grid.Cols).To(Equal(4))
		Expect(grid.Panels).To(HaveLen(10))
	})

	It("gives every panel an identically sized window", func() {
		for _, f := range figural.Families() {
			grid, err := layout.Compose(f, 1, 9, distance, 3)
			Expect(err).NotTo(HaveOccurred())

			w0 := grid.Panels[0].Window
			for _, p := range grid.Panels[1:] {
				Expect(p.Window.Width()).To(BeNumerically("~", w0.Width(), 1e-9),
					"%s panel %d width", f.Name(), p.Index)
				Expect(p.Window.Height()).To(BeNumerically("~", w0.Height(), 1e-9),
					"%s panel %d height", f.Name(), p.Index)
			}
		}
	})

	It("centers each window on its own figure", func() {
		for _, f := range figural.Families() {
			grid, err := layout.Compose(f, 1, 6, distance, 3)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range grid.Panels {
				b := f.Bounds(p.Index, distance)
				cx := (b.XMin + b.XMax) / 2
				Expect(p.Window.Center().X).To(BeNumerically("~", cx, 1e-9))
				Expect(p.Window.YMin).To(BeNumerically("~", b.YMin-2*distance, 1e-9))
			}
		}
	})

	It("suppresses top and left borders beyond the first row and column", func() {
		grid, err := layout.Compose(figural.Pentagonal{}, 1, 8, distance, 4)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range grid.Panels {
			Expect(p.Borders.Top).To(Equal(p.Row == 0), "panel %d top", p.Index)
			Expect(p.Borders.Left).To(Equal(p.Col == 0), "panel %d left", p.Index)
			Expect(p.Borders.Bottom).To(BeTrue())
			Expect(p.Borders.Right).To(BeTrue())
		}
	})

	It("contains every figure point inside its panel window", func() {
		for _, f := range figural.Families() {
			grid, err := layout.Compose(f, 1, 12, distance, 4)
			Expect(err).NotTo(HaveOccurred())
			for _, panel := range grid.Panels {
				lay, err := layout.Of(f, panel.Index, distance, false, false)
				Expect(err).NotTo(HaveOccurred())
				for _, pt := range lay.Points {
					Expect(panel.Window.Contains(pt)).To(BeTrue(),
						"%s N=%d point %+v outside window %+v",
						f.Name(), panel.Index, pt, panel.Window)
				}
			}
		}
	})
})
