package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/vitalpoint/callhub-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Get(schema.Coordinates) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g geoInfo) Get(loc schema.Coordinates) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}

// AdministrativeArea extracts the county and state names from a geocoding
// response, returning empty strings when the lookup found nothing usable.
func AdministrativeArea(results []maps.GeocodingResult) (county, state string) {
	if len(results) == 0 {
		return "", ""
	}
	for _, a := range results[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "administrative_area_level_1":
			state = a.ShortName
		case "administrative_area_level_2":
			county = a.LongName
		}
	}
	return county, state
}
