package optimizer

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/christopherklint97/jetlagr/internal/clock"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

const (
	MelatoninLeadMinutes     = 180
	MelatoninDurationMinutes = 30
	MorningLightMinutes      = 120
	EveningLightLeadMinutes  = 180
	EveningLightEndMinutes   = 60
)

// Fixed destination-local anchors for travel and arrival days.
var (
	TravelLightAvoidStart = clock.MustParse("00:00")
	TravelLightAvoidEnd   = clock.MustParse("06:00")
	TravelNapStart        = clock.MustParse("12:00")
	TravelNapEnd          = clock.MustParse("15:00")
	TravelCaffeineAnchor  = clock.MustParse("23:00")

	ArrivalMorningLightStart = clock.MustParse("07:30")
	ArrivalMorningLightEnd   = clock.MustParse("09:30")
	ArrivalEveningLightStart = clock.MustParse("16:00")
	ArrivalEveningLightEnd   = clock.MustParse("18:00")
)

type planner struct {
	in         *resolved
	strategy   Strategy
	dailyShift int
	caffeine   int
}

func (p planner) preTravelDays(total int) []PlanDay {
	zone := p.in.trip.FirstLeg().OriginTZ
	dep := p.in.departure

	days := make([]PlanDay, 0, total)
	for i := total; i >= 1; i-- {
		date := time.Date(dep.Year(), dep.Month(), dep.Day()-i, 0, 0, 0, 0, dep.Location())
		days = append(days, PlanDay{
			Date:       date.Format(trip.DateLayout),
			Kind:       DayPreTravel,
			TimeZone:   zone,
			Summary:    fmt.Sprintf("Pre-travel day %d: %s schedule by %d minutes", total-i+1, p.strategy, p.dailyShift),
			Activities: p.preTravelActivities(i, zone),
		})
	}
	return days
}

// preTravelActivities covers the day daysBefore days ahead of departure.
// The shift is cumulative, so the earliest day carries the largest offset.
func (p planner) preTravelActivities(daysBefore int, zone string) []ActivityBlock {
	advancing := p.strategy == StrategyAdvance
	shift := daysBefore * p.dailyShift
	direction := "later"
	offset := shift
	if advancing {
		direction = "earlier"
		offset = -shift
	}
	sleepStart := p.in.sleepStart.Add(offset)
	sleepEnd := p.in.sleepEnd.Add(offset)

	blocks := []ActivityBlock{{
		Type:        ActivitySleep,
		Start:       sleepStart,
		End:         sleepEnd,
		Description: fmt.Sprintf("Adjusted sleep schedule (%s by %d minutes)", direction, shift),
		TimeZone:    zone,
	}}

	if p.in.trip.MelatoninOptIn && advancing {
		blocks = append(blocks, melatonin(sleepStart, "Take melatonin (0.5-1mg) to advance sleep schedule", zone))
	}

	if advancing {
		blocks = append(blocks, ActivityBlock{
			Type:        ActivityLightSeek,
			Start:       sleepEnd,
			End:         sleepEnd.Add(MorningLightMinutes),
			Description: "Seek bright morning light to advance circadian rhythm",
			TimeZone:    zone,
		})
	} else {
		blocks = append(blocks, ActivityBlock{
			Type:        ActivityLightSeek,
			Start:       sleepStart.Add(-EveningLightLeadMinutes),
			End:         sleepStart.Add(-EveningLightEndMinutes),
			Description: "Seek late afternoon/evening light to delay circadian rhythm",
			TimeZone:    zone,
		})
	}

	blocks = append(blocks, p.caffeineCutoff(sleepStart,
		fmt.Sprintf("No caffeine after this time (%dh before bedtime)", p.caffeine), zone))

	return sortBlocks(blocks)
}

func (p planner) travelDays() []PlanDay {
	days := make([]PlanDay, 0, len(p.in.trip.Legs))
	for i, leg := range p.in.trip.Legs {
		days = append(days, PlanDay{
			Date:       p.in.legDeparts[i].Format(trip.DateLayout),
			Kind:       DayTravel,
			TimeZone:   leg.DestTZ,
			Summary:    fmt.Sprintf("Travel day: %s to %s", leg.OriginCity, leg.DestCity),
			Activities: p.travelActivities(leg.DestTZ),
		})
	}
	return days
}

func (p planner) travelActivities(zone string) []ActivityBlock {
	blocks := []ActivityBlock{{
		Type:        ActivityLightAvoid,
		Start:       TravelLightAvoidStart,
		End:         TravelLightAvoidEnd,
		Description: "Avoid bright light during destination biological night (wear eye mask/blue-light blockers)",
		TimeZone:    zone,
	}}

	// nap guidance is economy only
	if p.in.trip.CabinType == trip.CabinEconomy {
		blocks = append(blocks, ActivityBlock{
			Type:        ActivityNap,
			Start:       TravelNapStart,
			End:         TravelNapEnd,
			Description: "Optional 20-30 minute nap if sleep deprived (not after 3 PM local)",
			TimeZone:    zone,
		})
	}

	blocks = append(blocks, p.caffeineCutoff(TravelCaffeineAnchor,
		"Moderate caffeine OK before this time to stay alert", zone))

	return sortBlocks(blocks)
}

func (p planner) postArrivalDays() []PlanDay {
	final := p.in.trip.FinalLeg()
	arr := p.in.finalArrival

	days := make([]PlanDay, 0, PostArrivalDays)
	for i := 1; i <= PostArrivalDays; i++ {
		date := time.Date(arr.Year(), arr.Month(), arr.Day()+i, 0, 0, 0, 0, arr.Location())
		days = append(days, PlanDay{
			Date:       date.Format(trip.DateLayout),
			Kind:       DayPostArrival,
			TimeZone:   final.DestTZ,
			Summary:    fmt.Sprintf("Post-arrival day %d: Maintain destination schedule", i),
			Activities: p.postArrivalActivities(i, final.DestTZ),
		})
	}
	return days
}

func (p planner) postArrivalActivities(dayNumber int, zone string) []ActivityBlock {
	sleepStart := p.in.sleepStart

	blocks := []ActivityBlock{{
		Type:        ActivitySleep,
		Start:       sleepStart,
		End:         p.in.sleepEnd,
		Description: "Maintain destination sleep schedule",
		TimeZone:    zone,
	}}

	switch p.strategy {
	case StrategyAdvance:
		blocks = append(blocks, ActivityBlock{
			Type:        ActivityLightSeek,
			Start:       ArrivalMorningLightStart,
			End:         ArrivalMorningLightEnd,
			Description: "Seek morning sunlight to reinforce advanced schedule",
			TimeZone:    zone,
		})
	case StrategyDelay:
		blocks = append(blocks, ActivityBlock{
			Type:        ActivityLightSeek,
			Start:       ArrivalEveningLightStart,
			End:         ArrivalEveningLightEnd,
			Description: "Seek late afternoon sunlight to reinforce delayed schedule",
			TimeZone:    zone,
		})
	case StrategyMinimal:
		// no light guidance
	}

	if p.in.trip.MelatoninOptIn && dayNumber <= PostArrivalMelatoninDays {
		blocks = append(blocks, melatonin(sleepStart,
			fmt.Sprintf("Melatonin to consolidate new schedule (day %d/%d)", dayNumber, PostArrivalDays), zone))
	}

	blocks = append(blocks, p.caffeineCutoff(sleepStart, "No caffeine after this time", zone))

	return sortBlocks(blocks)
}

func (p planner) caffeineCutoff(anchor clock.Clock, description, zone string) ActivityBlock {
	return ActivityBlock{
		Type:        ActivityCaffeineCutoff,
		Start:       anchor.Add(-p.caffeine * clock.MinutesPerHour),
		End:         anchor,
		Description: description,
		TimeZone:    zone,
	}
}

func melatonin(sleepStart clock.Clock, description, zone string) ActivityBlock {
	start := sleepStart.Add(-MelatoninLeadMinutes)
	return ActivityBlock{
		Type:        ActivityMelatonin,
		Start:       start,
		End:         start.Add(MelatoninDurationMinutes),
		Description: description,
		TimeZone:    zone,
	}
}

func sortBlocks(blocks []ActivityBlock) []ActivityBlock {
	slices.SortStableFunc(blocks, func(a, b ActivityBlock) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return blocks
}
