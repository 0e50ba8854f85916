package settings

import (
	"github.com/matzehuels/graphloom/pkg/props"
)

// Sample returns the built-in settings: a layered, network-simplex layout
// flowing right, 60x60 leaf nodes with labels below, subgraphs labelled
// inside at the top, undirected edges, and the default icon map.
// Each call returns a fresh value.
func Sample() *Settings {
	return &Settings{
		AutoCreateMissingNodes:    true,
		EstimateLabelSizeFromFont: true,
		LayoutOptions: props.Properties{
			"org.eclipse.elk.algorithm":                      props.String("layered"),
			"org.eclipse.elk.layered.layering.strategy":      props.String("NETWORK_SIMPLEX"),
			"org.eclipse.elk.layered.nodePlacement.strategy": props.String("NETWORK_SIMPLEX"),
			"org.eclipse.elk.portConstraints":                props.String("FREE"),
			"org.eclipse.elk.nodeSize.constraints":           props.String("MINIMUM_SIZE"),
			"org.eclipse.elk.nodeSize.options":               props.String("[DEFAULT_MINIMUM_SIZE,COMPUTE_PADDING,MINIMUM_SIZE_ACCOUNTS_FOR_PADDING]"),
			"org.eclipse.elk.hierarchyHandling":              props.String("INCLUDE_CHILDREN"),
			"org.eclipse.elk.aspectRatio":                    props.String("1.414"),
			"org.eclipse.elk.zoomToFit":                      props.Bool(true),
			"org.eclipse.elk.direction":                      props.String("RIGHT"),
			"org.eclipse.elk.padding":                        props.String("[top=60,left=60,bottom=60,right=60]"),
			"org.eclipse.elk.spacing.labelPortHorizontal":    props.Int(1),
			"org.eclipse.elk.spacing.labelPortVertical":      props.Float(-3.5),
		},
		NodeDefaults: NodeDefaults{
			Type:   "default",
			Width:  Float(60),
			Height: Float(60),
			Label:  arialLabel("Node", 150, 16, 16),
			Port: PortDefaults{
				Width:      1,
				Height:     1,
				Label:      arialLabel("Port", 0, 2, 4),
				Properties: props.Properties{},
			},
			Properties: props.Properties{
				"org.eclipse.elk.portConstraints":        props.String("FREE"),
				"org.eclipse.elk.portLabels.treatAsGroup": props.Bool(true),
				"org.eclipse.elk.portLabels.placement":   props.String("[OUTSIDE,NEXT_TO_PORT_IF_POSSIBLE]"),
				"org.eclipse.elk.nodeLabels.placement":   props.String("[OUTSIDE, V_BOTTOM, H_CENTER, H_PRIORITY]"),
			},
		},
		SubgraphDefaults: &NodeDefaults{
			Type:  TypeSubgraph,
			Label: arialLabel("Subgraph", 300, 20, 20),
			Port: PortDefaults{
				Width:      2,
				Height:     2,
				Label:      arialLabel("Port", 0, 2, 4),
				Properties: props.Properties{},
			},
			Properties: props.Properties{
				"org.eclipse.elk.portConstraints":      props.String("FREE"),
				"org.eclipse.elk.portLabels.placement": props.String("[OUTSIDE, NEXT_TO_PORT_IF_POSSIBLE]"),
				"org.eclipse.elk.nodeLabels.placement": props.String("[INSIDE, V_TOP, H_CENTER]"),
			},
		},
		EdgeDefaults: EdgeDefaults{
			Label: LabelDefaults{
				Text:   "",
				Width:  200,
				Height: 10,
				Properties: props.Properties{
					props.KeyFontName:                    props.String("Arial"),
					props.KeyFontSize:                    props.Int(10),
					"org.eclipse.elk.edgeLabels.inline": props.Bool(true),
				},
			},
			Properties: props.Properties{
				"org.eclipse.elk.edge.type": props.String("UNDIRECTED"),
				props.KeyEdgeThickness:      props.Int(1),
			},
		},
		TypeIconMap: sampleIcons(),
	}
}

func arialLabel(text string, width, height float64, fontSize int64) LabelDefaults {
	return LabelDefaults{
		Text:   text,
		Width:  width,
		Height: height,
		Properties: props.Properties{
			props.KeyFontName: props.String("Arial"),
			props.KeyFontSize: props.Int(fontSize),
		},
	}
}

func sampleIcons() map[string]string {
	return map[string]string{
		"router":          "mdi:router",
		"switch":          "clarity:network-switch-line",
		"mpls":            "mdi:cloud-braces",
		"vpn":             "material-symbols:cloud-lock-outline",
		"firewall":        "clarity:firewall-line",
		"cloud":           "material-symbols:cloud-outline",
		"datacenter":      "material-symbols:data-table-outline",
		"azure":           "codicon:azure",
		"internet":        "mdi:web",
		"cpe":             "material-symbols:router-outline",
		"database":        "mdi:database-outline",
		"server":          "mdi:server-outline",
		"host":            "clarity:host-line",
		"ran":             "mdi:radio-tower",
		"radio":           "material-symbols:cell-tower",
		"splitter":        "mdi:axis-arrow",
		"devices":         "mdi:devices",
		"satelliteuplink": "mdi:satellite-uplink",
		"satellite":       "mdi:satellite-variant",
		"broadcast":       "mdi:cast-audio-variant",
		"lan":             "mdi:lan",
		"diagnostics":     "mdi:bug-outline",
		"analytics":       "mdi:chart-line",
		"monitor":         "mdi:monitor-dashboard",
		"logging":         "mdi:book-edit-outline",
		"iam":             "material-symbols:identity-platform-outline",
		"idea":            "mdi:lightbulb-on-outline",
		"tools":           "mdi:tools",
		"cctv":            "mdi:cctv",
		"process":         "mdi:cog-refresh-outline",
		"cooling":         "mdi:fan",
		"security":        "mdi:lock-outline",
		"console":         "mdi:remote-desktop",
		"gis":             "mdi:map-marker-outline",
		"city":            "mdi:home-city-outline",
		"settlement":      "mdi:home-group",
		"sdu":             "mdi:home-outline",
		"mdu":             "mdi:office-building-outline",
		"company":         "mdi:domain",
		"farm":            "mdi:farm-home-outline",
		"airport":         "mdi:airplane",
		"mine":            "mdi:hammer",
		"fieldservice":    "mdi:briefcase-variant-outline",
		"facility":        "mdi:garage-variant-lock",
		"energy":          "mdi:battery-50",
		"transmission":    "material-symbols:graph-3",
		"ip":              "streamline:cloud-share",
		"mobilecore":      "mdi:mobile-phone-settings-variant",
		"access":          "mdi:connection",
		"operation":       "mdi:account-cog-outline",
		"controller":      "mdi:account-tie-hat-outline",
		"product":         "mdi:cart-outline",
		"consumer":        "mdi:account-outline",
		"fortinet":        "simple-icons:fortinet",
		"juniper":         "simple-icons:junipernetworks",
		"ericsson":        "simple-icons:ericsson",
		"huawei":          "simple-icons:huawei",
		"cisco":           "simple-icons:cisco",
		"mikrotik":        "simple-icons:mikrotik",
		"dell":            "simple-icons:dell",
		"ubiquiti":        "simple-icons:ubiquiti",
	}
}
