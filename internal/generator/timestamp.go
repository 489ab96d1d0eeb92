package generator

import (
	"time"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/randx"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// timestampFor produces an instant inside the calendar day at the given
// offset into the past. The hour comes from the banking-hours weight table;
// minute, second and millisecond are uniform. Day and hour are taken from the
// constructed instant itself, so the three are consistent by construction.
func (g *Generator) timestampFor(dayOffset int) (time.Time, string, int) {
	date := g.now.AddDate(0, 0, -dayOffset)
	hour := randx.WeightedChoice(g.rng, len(refdata.HourWeights), func(i int) float64 {
		return refdata.HourWeights[i]
	})

	ts := time.Date(
		date.Year(), date.Month(), date.Day(),
		hour,
		g.rng.Intn(60),
		g.rng.Intn(60),
		g.rng.Intn(1000)*int(time.Millisecond),
		time.UTC,
	)
	return ts, ts.Format(models.DayFormat), ts.Hour()
}
