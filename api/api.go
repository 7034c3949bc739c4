package api

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geo-calc/api/model"
	"github.com/a-bouts/geo-calc/calc"
	"github.com/a-bouts/geo-calc/coord"
	"github.com/a-bouts/geo-calc/units"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
)

type server struct {
	cpuprofile bool
	units      units.System
}

func InitServer(cpuprofile bool, defaultUnits units.System) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	s := server{
		cpuprofile: cpuprofile,
		units:      defaultUnits,
	}

	router.HandleFunc("/calc/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/calc/api/v1").Subrouter()
	apiV1.HandleFunc("/convert", s.convert).Methods(http.MethodPost)
	apiV1.HandleFunc("/distance", s.distance).Methods(http.MethodPost)
	apiV1.HandleFunc("/approx", s.approx).Methods(http.MethodPost)
	apiV1.HandleFunc("/destination", s.destination).Methods(http.MethodPost)
	apiV1.HandleFunc("/strategies", s.getStrategies).Methods(http.MethodGet)
	apiV1.HandleFunc("/locate", s.locate).Methods(http.MethodGet).Queries("q", "{q}")
	apiV1.HandleFunc("/parse/{axis}/{format}", s.parse).Methods(http.MethodGet).Queries("q", "{q}")

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) getStrategies(w http.ResponseWriter, req *http.Request) {
	strategies := make([]string, 0, len(calc.Strategies))
	for name := range calc.Strategies {
		strategies = append(strategies, name)
	}
	sort.Strings(strategies)

	json.NewEncoder(w).Encode(strategies)
}

func newRequestLogger(action string, req *http.Request) *log.Entry {
	fields := log.Fields{
		"action": action,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func (s *server) convert(w http.ResponseWriter, req *http.Request) {
	var c model.Convert
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Debugf("Convert '%s' '%s' spaced %t", c.Lat, c.Lon, c.Spaced)

	json.NewEncoder(w).Encode(calc.Convert(c.Lat, c.Lon, c.Spaced))
}

func (s *server) distance(w http.ResponseWriter, req *http.Request) {
	requestLogger := newRequestLogger("distance", req)

	var d model.Distance
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	r, err := calc.Distance(d.From, d.To)
	if err != nil {
		requestLogger.Warnf("Distance from '%s' to '%s' : %v", d.From, d.To, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	requestLogger.Infof("Distance from '%s' to '%s' : %s", d.From, d.To, r.Metric)

	res := model.DistanceResult{
		From:     r.From,
		To:       r.To,
		Metric:   r.Metric,
		US:       r.US,
		Nautical: r.Nautical,
		Bearing:  r.Bearing,
	}
	if r.Metric != "n/a" {
		res.Meters = &r.Meters
	}

	json.NewEncoder(w).Encode(res)
}

func (s *server) approx(w http.ResponseWriter, req *http.Request) {
	var a model.Approx
	if err := json.NewDecoder(req.Body).Decode(&a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	system := s.units
	if a.Units != "" {
		var err error
		if system, err = units.ParseSystem(a.Units); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	json.NewEncoder(w).Encode(model.Coordinate{Value: calc.ApproxDistance(a.From, a.To, system)})
}

func (s *server) destination(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	requestLogger := newRequestLogger("destination", req)

	var d model.Destination
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	solver, err := calc.Strategy(d.Strategy)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()

	r := calc.New(solver, s.units).Destination(d.Lat, d.Lon, d.Distance, d.Bearing)

	delta := time.Now().Sub(start)
	requestLogger.Infof("Destination from '%s' '%s' at '%s' for '%s' took %s", d.Lat, d.Lon, d.Bearing, d.Distance, delta.String())

	if r.Pair == "" {
		requestLogger.Warnf("Destination could not be computed")
		http.Error(w, "unreadable coordinates, distance or bearing", http.StatusUnprocessableEntity)
		return
	}

	json.NewEncoder(w).Encode(model.DestinationResult{
		Lat:   r.Lat,
		Lon:   r.Lon,
		Pair:  r.Pair,
		Units: r.System.String(),
	})
}

func (s *server) locate(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query().Get("q")

	p, ok := calc.Locate(q)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(p)
}

func (s *server) parse(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	var axis coord.Axis
	switch strings.ToLower(vars["axis"]) {
	case "lat":
		axis = coord.Latitude
	case "lon":
		axis = coord.Longitude
	case "auto":
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	q := req.URL.Query().Get("q")
	v := coord.Parse(q, coord.Options{Axis: axis, Format: coord.ParseFormat(vars["format"]), Spaced: req.URL.Query().Get("spaced") == "true"})
	if v == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if axis == coord.Unknown {
		axis = coord.Scan(q).Axis
	}

	json.NewEncoder(w).Encode(model.Coordinate{Value: v, Axis: axis.String()})
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
