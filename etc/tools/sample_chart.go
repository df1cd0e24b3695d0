package main

import (
	"fmt"
	"os"
	"path/filepath"

	"simple-charts/internal/chart"
	"simple-charts/internal/surface"
)

// go run etc/tools/sample_chart.go
// in etc/charts/sample_line.png and etc/charts/sample_bar.png
func main() {
	fmt.Println("Generating sample charts...")

	data := chart.Data{
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Datasets: []chart.Dataset{{
			Label: "Sales",
			Data:  []float64{12, 19, 3, 5, 2, 3},
			Fill:  true,
		}},
	}

	for _, typ := range []chart.Type{chart.TypeLine, chart.TypeBar} {
		canvas := surface.NewCanvas(600, 0)
		reg := surface.NewRegistry()
		reg.Register("sample", canvas)

		showTitle := true
		r := chart.New(reg, "sample", chart.Config{Type: typ, Data: data, ShowTitle: &showTitle},
			chart.WithStyle(sampleStyle()))
		if err := r.Err(); err != nil {
			fmt.Printf("Error rendering %s chart: %v\n", typ, err)
			os.Exit(1)
		}

		filename := filepath.Join("etc", "charts", fmt.Sprintf("sample_%s.png", typ))
		if err := canvas.SavePNG(filename); err != nil {
			fmt.Printf("Error saving chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Chart generated successfully: %s\n", filename)
	}
	fmt.Println("Open the files to see the result!")
}

func sampleStyle() chart.Style {
	st := chart.DefaultStyle()
	st.Background = surface.MustParseColor("white")
	return st
}
