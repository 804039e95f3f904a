//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"delta-detect/internal/domain/entity"
	"delta-detect/internal/domain/port"
)

const (
	weightsFile = "yolov3-tiny.weights"
	configFile  = "yolov3-tiny.cfg"
	weightsURL  = "https://pjreddie.com/media/files/yolov3-tiny.weights"
	configURL   = "https://raw.githubusercontent.com/pjreddie/darknet/master/cfg/yolov3-tiny.cfg"

	inputSize = 416
)

// YOLOEngine runs a YOLOv3-tiny network through the OpenCV DNN module.
type YOLOEngine struct {
	net          gocv.Net
	outputLayers []string
	loaded       bool
	log          *logrus.Logger
}

// NewYOLOEngine loads the model from modelDir, downloading the weight
// and config files if they are missing. A failed load leaves the
// engine in a not-loaded state rather than erroring.
func NewYOLOEngine(modelDir string, log *logrus.Logger) *YOLOEngine {
	if log == nil {
		log = logrus.New()
	}
	e := &YOLOEngine{log: log}

	weightsPath, configPath, err := ensureModelFiles(modelDir, log)
	if err != nil {
		log.WithError(err).Error("model files not available")
		return e
	}

	net := gocv.ReadNet(weightsPath, configPath)
	if net.Empty() {
		log.Error("failed to load YOLO network")
		return e
	}
	net.SetPreferableBackend(gocv.NetBackendOpenCV)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	layerNames := net.GetLayerNames()
	for _, i := range net.GetUnconnectedOutLayers() {
		e.outputLayers = append(e.outputLayers, layerNames[i-1])
	}

	e.net = net
	e.loaded = true
	log.Info("YOLO model loaded")
	return e
}

// IsLoaded reports whether the network is ready for inference.
func (e *YOLOEngine) IsLoaded() bool {
	return e.loaded
}

// Detect runs the forward pass and returns raw anchor rows in the
// shape the postprocessor expects: [cx, cy, w, h, class scores...].
func (e *YOLOEngine) Detect(ctx context.Context, frame *entity.Frame, confThreshold float64) ([][]float32, error) {
	_ = ctx
	_ = confThreshold
	if !e.loaded {
		return nil, nil
	}

	mat, err := gocv.NewMatFromBytes(frame.Height, frame.Width, gocv.MatTypeCV8UC3, frame.Pix)
	if err != nil {
		return nil, fmt.Errorf("frame to mat: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1/255.0, image.Pt(inputSize, inputSize), gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	e.net.SetInput(blob, "")
	outputs := e.net.ForwardLayers(e.outputLayers)
	defer func() {
		for i := range outputs {
			outputs[i].Close()
		}
	}()

	var rows [][]float32
	for _, out := range outputs {
		data, err := out.DataPtrFloat32()
		if err != nil {
			return nil, fmt.Errorf("read network output: %w", err)
		}
		cols := out.Cols()
		if cols < 6 {
			continue
		}
		for r := 0; r < out.Rows(); r++ {
			raw := data[r*cols : (r+1)*cols]
			// Drop the objectness column, keeping box + class scores.
			row := make([]float32, 0, cols-1)
			row = append(row, raw[:4]...)
			row = append(row, raw[5:]...)
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Close releases the network.
func (e *YOLOEngine) Close() error {
	if e.loaded {
		return e.net.Close()
	}
	return nil
}

// ensureModelFiles returns the model file paths, fetching them over
// HTTP when absent.
func ensureModelFiles(modelDir string, log *logrus.Logger) (weightsPath, configPath string, err error) {
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create model dir: %w", err)
	}

	weightsPath = filepath.Join(modelDir, weightsFile)
	configPath = filepath.Join(modelDir, configFile)

	for path, url := range map[string]string{weightsPath: weightsURL, configPath: configURL} {
		if _, statErr := os.Stat(path); statErr == nil {
			continue
		}
		log.Infof("downloading %s", filepath.Base(path))
		if err := downloadFile(url, path); err != nil {
			return "", "", err
		}
	}
	return weightsPath, configPath, nil
}

// downloadFile fetches url into path.
func downloadFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

var _ port.InferenceEngine = (*YOLOEngine)(nil)
