// Package monitoring turns a model run into a small web server, so that the
// state of the clock and the FIFOs can be inspected and stepped from outside
// the process.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/syncfifo/fifo"
	"github.com/sarchlab/syncfifo/sim/timing"
)

// Monitor exposes a clock and the FIFOs it drives over HTTP.
type Monitor struct {
	clock       *timing.Clock
	fifos       []*fifo.Core
	portNumber  int
	openBrowser bool
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and replaced with a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserLaunch makes StartServer open the monitor URL in the default
// browser.
func (m *Monitor) WithBrowserLaunch() *Monitor {
	m.openBrowser = true

	return m
}

// RegisterClock registers the clock that drives the model.
func (m *Monitor) RegisterClock(c *timing.Clock) {
	m.clock = c
}

// RegisterFifo registers a FIFO to be monitored.
func (m *Monitor) RegisterFifo(f *fifo.Core) {
	m.fifos = append(m.fifos, f)
}

// StartServer starts the monitor as a web server and returns the URL it
// serves on.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/step/{n}", m.step)
	r.HandleFunc("/api/list_fifos", m.listFifos)
	r.HandleFunc("/api/fifo/{name}", m.fifoDetails)
	r.HandleFunc("/api/levels", m.listLevels)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring model with %s\n", url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()

	if m.openBrowser {
		_ = browser.OpenURL(url)
	}

	return url
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%d}", m.clock.Now())
}

func (m *Monitor) step(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(mux.Vars(r)["n"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	m.clock.Step(n)
	fmt.Fprintf(w, "{\"now\":%d}", m.clock.Now())
}

func (m *Monitor) listFifos(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, f := range m.fifos {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", f.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) fifoDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	f := m.findFifoOr404(w, name)
	if f == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(f)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type levelRsp struct {
	Fifo      string `json:"fifo"`
	Occupancy uint64 `json:"occupancy"`
	Capacity  int    `json:"capacity"`
	Full      bool   `json:"full"`
	Empty     bool   `json:"empty"`
}

func (m *Monitor) listLevels(w http.ResponseWriter, _ *http.Request) {
	levels := make([]levelRsp, 0, len(m.fifos))
	for _, f := range m.fifos {
		levels = append(levels, levelRsp{
			Fifo:      f.Name(),
			Occupancy: f.Occupancy(),
			Capacity:  f.Capacity(),
			Full:      f.Full(),
			Empty:     f.Empty(),
		})
	}

	bytes, err := json.Marshal(levels)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) findFifoOr404(
	w http.ResponseWriter,
	name string,
) *fifo.Core {
	for _, f := range m.fifos {
		if f.Name() == name {
			return f
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("FIFO not found"))
	dieOnErr(err)

	return nil
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memoryInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memoryInfo.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
