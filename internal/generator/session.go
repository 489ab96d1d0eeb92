package generator

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/telesynth/telesynth-cli/internal/models"
	"github.com/telesynth/telesynth-cli/internal/randx"
	"github.com/telesynth/telesynth-cli/internal/refdata"
)

// Selection weights for release channel and network type. The original nested
// Bernoulli gates only approximated these marginals; an explicit weighted
// table is used instead.
var (
	channelChoices = []refdata.Weighted{
		{Value: models.ChannelProd, Weight: 0.70},
		{Value: models.ChannelPilot, Weight: 0.18},
		{Value: models.ChannelUAT, Weight: 0.06},
		{Value: models.ChannelDev, Weight: 0.06},
	}
	networkChoices = []refdata.Weighted{
		{Value: models.NetworkWifi, Weight: 0.40},
		{Value: models.NetworkCellular, Weight: 0.54},
		{Value: models.NetworkOffline, Weight: 0.06},
	}
)

const branchSessionShare = 0.15

// session carries the shared context every event in the session inherits.
type session struct {
	dayOffset int
	branch    bool

	country   string
	locale    string
	app       refdata.App
	platform  string
	device    refdata.Device
	osVersion string
	channel   string
	version   refdata.AppVersion
	network   string
	carrier   string

	sessionID    string
	userPseudoID string

	forceTransaction bool
}

// synthesizeSession walks the selection states in order, each depending on
// prior choices, then fabricates 2-N events sharing the session identity.
// When the country has no apps for the chosen audience the session is
// abandoned and contributes zero events.
func (g *Generator) synthesizeSession(dayOffset int) []models.RawEvent {
	s := session{dayOffset: dayOffset}

	s.country = g.pickWeighted(refdata.Countries)
	s.locale = g.pickWeighted(refdata.Locales[s.country])

	s.branch = g.rng.Float64() < branchSessionShare
	audience := refdata.AudienceCustomer
	if s.branch {
		audience = refdata.AudienceBranch
	}
	apps := refdata.FilterApps(audience, s.country)
	if len(apps) == 0 {
		return nil
	}
	s.app = randx.Pick(g.rng, apps)

	s.platform = g.choosePlatform(s.app, s.branch)
	s.device = g.chooseDevice(s.platform)
	s.osVersion = g.pickWeighted(refdata.OSVersions[s.platform])

	s.channel = g.pickWeighted(channelChoices)
	s.version = g.chooseVersion(s.app.ID, s.channel, s.platform, dayOffset)

	s.network = g.pickWeighted(networkChoices)
	if s.network == models.NetworkCellular {
		s.carrier = g.pickWeighted(refdata.Carriers[s.country])
	}

	s.sessionID = uuid.New().String()
	s.userPseudoID = g.userPseudoID(s.country, s.branch)

	count := int(math.Round(g.cfg.AvgEventsPerSession + randx.UniformRange(g.rng, -2, 2)))
	if count < 2 {
		count = 2
	}
	// One customer session in three guarantees a completed transaction.
	s.forceTransaction = !s.branch && g.rng.Intn(3) == 0

	events := make([]models.RawEvent, 0, count)
	for slot := 0; slot < count; slot++ {
		events = append(events, g.synthesizeEvent(&s, slot == count-1))
	}
	return events
}

// synthesizeEvent decides the event category for one session slot. The crash
// decision runs first and takes precedence; otherwise the slot splits between
// analytics and performance by the configured ratio. A flagged session's
// final non-crash slot is forced to a completed transaction.
func (g *Generator) synthesizeEvent(s *session, final bool) models.RawEvent {
	ts, day, hour := g.timestampFor(s.dayOffset)

	e := models.RawEvent{
		ID:             uuid.New().String(),
		SessionID:      s.sessionID,
		UserPseudoID:   s.userPseudoID,
		Timestamp:      ts,
		Day:            day,
		Hour:           hour,
		AppID:          s.app.ID,
		AppName:        s.app.Name,
		Platform:       s.platform,
		ReleaseChannel: s.channel,
		AppVersion:     s.version.Version,
		BuildNumber:    s.version.Build,
		OSVersion:      s.osVersion,
		DeviceModel:    s.device.Model,
		DeviceTier:     s.device.Tier,
		Country:        s.country,
		Locale:         s.locale,
		NetworkType:    s.network,
		Carrier:        s.carrier,
		Count:          1,
	}

	switch {
	case g.shouldCrash(s.version, s.device.Tier, s.channel, s.dayOffset):
		e.Source = models.SourceCrash
		e.IsCrash = 1
		e.Crash = g.crashPayload(s.platform)
	case (s.forceTransaction && final) || g.rng.Float64() < g.analyticsShare():
		e.Source = models.SourceAnalytics
		e.Analytics = g.analyticsPayload(s, final)
	default:
		e.Source = models.SourcePerformance
		e.Performance = g.performancePayload(s)
	}
	return e
}

// analyticsShare is the analytics fraction of the non-crash event split.
func (g *Generator) analyticsShare() float64 {
	a := g.cfg.SourceRatios.Analytics
	p := g.cfg.SourceRatios.Performance
	if a+p <= 0 {
		return 0.5
	}
	return a / (a + p)
}

func (g *Generator) choosePlatform(app refdata.App, branch bool) string {
	if len(app.Platforms) == 1 {
		return app.Platforms[0]
	}
	if branch {
		for _, p := range app.Platforms {
			if p == models.PlatformWeb && g.rng.Float64() < 0.8 {
				return models.PlatformWeb
			}
		}
	}
	return randx.Pick(g.rng, app.Platforms)
}

func (g *Generator) chooseDevice(platform string) refdata.Device {
	catalog := refdata.Devices[platform]
	idx := randx.WeightedChoice(g.rng, len(catalog), func(i int) float64 {
		return catalog[i].Weight
	})
	return catalog[idx]
}

// userPseudoID is synthesized from country, role and a bounded random integer.
// Collisions across sessions are intentional: they model returning users.
func (g *Generator) userPseudoID(country string, branch bool) string {
	role := "customer"
	if branch {
		role = "branch"
	}
	return fmt.Sprintf("%s_%s_%05d", country, role, g.rng.Intn(20000))
}

func (g *Generator) pickWeighted(choices []refdata.Weighted) string {
	idx := randx.WeightedChoice(g.rng, len(choices), func(i int) float64 {
		return choices[i].Weight
	})
	return choices[idx].Value
}
