package main

import (
	"fmt"
	"os"
	"time"
)

// exportCanvasPNG writes the current frame, without the stroke in progress.
func (m *model) exportCanvasPNG() (string, error) {
	if m.raster == nil {
		return "", fmt.Errorf("no canvas available")
	}
	if m.scene.Empty() {
		return "", fmt.Errorf("nothing to export")
	}

	m.raster.Render(BuildDrawList(m.scene, nil, m.color(), m.config.CanvasSize()))

	filename := m.config.GetSavePath(fmt.Sprintf("happycap-%s.png", m.now().Format("20060102-150405")))
	file, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := m.raster.EncodePNG(file); err != nil {
		return "", err
	}
	return filename, nil
}

// exportEntryImage refuses capsules that are still locked.
func exportEntryImage(e LockedEntry, path string) error {
	if e.IsLocked {
		return fmt.Errorf("%w until %s", ErrEntryLocked, FormatDate(e.LockedUntil))
	}
	return writeDataURI(path, e.Image)
}

func writeDataURI(path, uri string) error {
	data, err := decodeDataURI(uri)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func exportName(now time.Time, id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("capsule-%s-%s.png", id, now.Format("20060102"))
}
