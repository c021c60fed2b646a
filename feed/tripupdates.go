package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/katalvlaran/stoproute/route"
)

// Sentinel errors.
var (
	// ErrNoFeedURL indicates a TripUpdates source with neither bytes nor URL.
	ErrNoFeedURL = errors.New("feed: no feed data or URL")

	// ErrDecode indicates the payload is not a valid GTFS-RT FeedMessage.
	ErrDecode = errors.New("feed: invalid GTFS-RT payload")
)

// TripUpdates is a route.Source backed by a GTFS-RT TripUpdates feed.
// Data wins over URL when both are set.
type TripUpdates struct {
	Data   []byte   // raw protobuf FeedMessage
	URL    string   // fetched with Client when Data is nil
	Client *Client  // nil → NewClient(DefaultTimeout)
	KM     *float64 // distance given to every derived route; nil → builder default
}

// Routes fetches (if needed), decodes and converts the feed.
func (t TripUpdates) Routes(ctx context.Context) ([]route.Route, error) {
	data := t.Data
	if data == nil {
		client := t.Client
		if client == nil {
			client = NewClient(DefaultTimeout)
		}
		var err error
		if data, err = client.Fetch(ctx, t.URL); err != nil {
			return nil, err
		}
	}

	fm, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return RoutesFromFeed(fm, t.KM), nil
}

// Decode unmarshals a GTFS-RT FeedMessage.
func Decode(data []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &fm, nil
}

// RoutesFromFeed turns every TripUpdate of fm into one route.
// Entities without a TripUpdate are ignored; trips whose stop list collapses
// to fewer than two stops are still returned so the builder can report them.
func RoutesFromFeed(fm *gtfsrtpb.FeedMessage, km *float64) []route.Route {
	if fm == nil {
		return nil
	}

	routes := make([]route.Route, 0, len(fm.GetEntity()))
	for _, e := range fm.GetEntity() {
		tu := e.GetTripUpdate()
		if tu == nil {
			continue
		}

		chain := stopChain(tu.GetStopTimeUpdate())
		r := route.Route{ID: tripLabel(e, tu), DistanceKM: km}
		switch len(chain) {
		case 0:
		case 1:
			r.Origin = chain[0]
		default:
			r.Origin = chain[0]
			r.Stops = chain[1 : len(chain)-1]
			r.Destination = chain[len(chain)-1]
		}
		routes = append(routes, r)
	}

	return routes
}

// stopChain orders updates by stop_sequence (when every update has one)
// and returns the served stop IDs.
func stopChain(updates []*gtfsrtpb.TripUpdate_StopTimeUpdate) []string {
	ordered := make([]*gtfsrtpb.TripUpdate_StopTimeUpdate, 0, len(updates))
	sequenced := true
	for _, u := range updates {
		if u.GetStopId() == "" {
			continue
		}
		if u.GetScheduleRelationship() == gtfsrtpb.TripUpdate_StopTimeUpdate_SKIPPED {
			continue
		}
		if u.StopSequence == nil {
			sequenced = false
		}
		ordered = append(ordered, u)
	}
	if sequenced {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].GetStopSequence() < ordered[j].GetStopSequence()
		})
	}

	chain := make([]string, 0, len(ordered))
	for _, u := range ordered {
		chain = append(chain, u.GetStopId())
	}

	return chain
}

// tripLabel prefers trip_id, then route_id, then the entity id.
func tripLabel(e *gtfsrtpb.FeedEntity, tu *gtfsrtpb.TripUpdate) string {
	if id := tu.GetTrip().GetTripId(); id != "" {
		return id
	}
	if id := tu.GetTrip().GetRouteId(); id != "" {
		return id
	}

	return e.GetId()
}
