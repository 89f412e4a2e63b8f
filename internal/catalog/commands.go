package catalog

import "math"

func required(key string, kind Kind) Param {
	return Param{Key: key, Kind: kind, Required: true}
}

func stringParam(key, def string) Param {
	return Param{Key: key, Kind: String, Default: def}
}

func boolParam(key string, def bool) Param {
	return Param{Key: key, Kind: Bool, Default: def}
}

func intParam(key string, def int) Param {
	return Param{Key: key, Kind: Int, Default: def}
}

func floatParam(key string, def float64) Param {
	return Param{Key: key, Kind: Float, Default: def}
}

func rangeParam(key string, def, min, max float64) Param {
	return Param{Key: key, Kind: Float, Default: def, Min: min, Max: max, Bounded: true}
}

func enumParam(key, def string, values ...string) Param {
	return Param{Key: key, Kind: Enum, Default: def, Enum: values}
}

func optional(key string, kind Kind) Param {
	return Param{Key: key, Kind: kind}
}

func optionalEnum(key string, values ...string) Param {
	return Param{Key: key, Kind: Enum, Enum: values}
}

var relativeTo = []string{
	"ProjectStart", "Project", "ProjectEnd",
	"SelectionStart", "Selection", "SelectionEnd",
}

var waveforms = []string{"Sine", "Square", "Sawtooth", "Square, no alias", "Triangle"}

var infoFormats = []string{"JSON", "LISP", "Brief"}

var trackColors = []string{"Color0", "Color1", "Color2", "Color3"}

// plain are commands that take no parameters: the name goes over the wire
// bare. Alphabetical, matching the scripting reference.
var plain = []string{
	"AddLabel", "AddLabelPlaying", "AdvancedVZoom",
	"Align_EndToEnd", "Align_EndToSelEnd", "Align_EndToSelStart",
	"Align_StartToSelEnd", "Align_StartToSelStart", "Align_StartToZero",
	"Align_Together", "AudioHost", "Built-in",
	"ClipLeft", "ClipRight", "Close", "CollapseAllTracks",
	"Copy", "CopyLabels", "CrossfadeClips",
	"CursNextClipBoundary", "CursPrevClipBoundary",
	"CursProjectEnd", "CursProjectStart", "CursSelEnd", "CursSelStart",
	"CursTrackEnd", "CursTrackStart",
	"CursorLeft", "CursorLongJumpLeft", "CursorLongJumpRight",
	"CursorRight", "CursorShortJumpLeft", "CursorShortJumpRight",
	"Cut", "CutLabels",
	"Delete", "DeleteKey", "DeleteKey2", "DeleteLabels",
	"Disjoin", "DisjoinLabels", "DrawTool", "Duplicate",
	"EnvelopeTool", "Exit", "ExpandAllTracks",
	"FadeIn", "FadeOut", "FirstTrack", "FitInWindow", "FitV", "FullScreenOnOff",
	"InputChannels", "InputDevice", "InputGainDec", "InputGainInc",
	"Invert", "Join", "JoinLabels",
	"LADSPA", "LastTrack", "Left at Playback Position",
	"Macro_FadeEnds", "Macro_MP3Conversion",
	"MixAndRender", "MixAndRenderToNewTrack",
	"MoveSelectionWithTracks", "MoveToNextLabel", "MoveToPrevLabel",
	"MultiTool", "MuteAllTracks", "MuteTracks",
	"New", "NewLabelTrack", "NewMonoTrack", "NewStereoTrack", "NewTimeTrack",
	"NextFrame", "NextHigherPeakFrequency", "NextLowerPeakFrequency",
	"NextTool", "NextTrack", "NextWindow", "Nyquist",
	"OutputDevice", "OutputGainDec", "OutputGainInc", "Overdub",
	"PanCenter", "PanLeft", "PanRight",
	"Paste", "PasteNewLabel", "Pause", "PinnedHead",
	"Play", "PlayAfterSelectionEnd", "PlayAfterSelectionStart",
	"PlayAtSpeed", "PlayAtSpeedCutPreview", "PlayAtSpeedLooped",
	"PlayBeforeAndAfterSelectionEnd", "PlayBeforeAndAfterSelectionStart",
	"PlayBeforeSelectionEnd", "PlayBeforeSelectionStart",
	"PlayCutPreview", "PlayOneSec", "PlaySpeedDec", "PlaySpeedInc",
	"PlayStop", "PlayStopSelect", "PlayToSelection",
	"PrevFrame", "PrevTool", "PrevTrack", "PrevWindow", "PunchAndRoll",
	"Record1stChoice", "Record2ndChoice", "Redo", "RemoveTracks",
	"Repair", "RepeatLastEffect", "Resample", "RescanDevices",
	"ResetToolbars", "Reverse", "Right at Playback Position",
	"SWPlaythrough", "Scrub", "Seek",
	"SeekLeftLong", "SeekLeftShort", "SeekRightLong", "SeekRightShort",
	"SelAllTracks", "SelCntrLeft", "SelCntrRight", "SelCursorStoredCursor",
	"SelCursorToNextClipBoundary", "SelCursorToTrackEnd",
	"SelEnd", "SelExtLeft", "SelExtRight",
	"SelNextClip", "SelPrevClip", "SelPrevClipBoundaryToCursor",
	"SelRestore", "SelSave", "SelSetExtLeft", "SelSetExtRight",
	"SelStart", "SelSyncLockTracks", "SelTrackStartToCursor", "SelTrackStartToEnd",
	"SelectAll", "SelectNone", "SelectTool", "SetPlaySpeed",
	"ShiftDown", "ShiftUp", "ShowClipping",
	"ShowDeviceTB", "ShowEditTB", "ShowExtraMenus", "ShowMixerTB",
	"ShowPlayMeterTB", "ShowRecordMeterTB", "ShowScrubbingTB",
	"ShowSelectionTB", "ShowSpectralSelectionTB", "ShowToolsTB",
	"ShowTranscriptionTB", "ShowTransportTB",
	"Silence", "SkipSelEnd", "SkipSelStart",
	"SnapToNearest", "SnapToOff", "SnapToPrior",
	"SortByName", "SortByTime", "SoundActivation", "SoundActivationLevel",
	"SpectralEditMultiTool",
	"Split", "SplitCut", "SplitCutLabels", "SplitDelete", "SplitDeleteLabels",
	"SplitLabels", "SplitNew", "Stereo to Mono", "Stop",
	"StoreCursorPosition", "StudioFadeOut", "SyncLock",
	"Toggle", "ToggleAlt", "ToggleScrubRuler", "ToggleSpectralSelection",
	"TrackClose", "TrackGain", "TrackGainDec", "TrackGainInc",
	"TrackMoveBottom", "TrackMoveDown", "TrackMoveTop", "TrackMoveUp",
	"TrackMute", "TrackPan", "TrackPanLeft", "TrackPanRight", "TrackSolo",
	"Trim", "TypeToCreateLabel", "Undo",
	"UnmuteAllTracks", "UnmuteTracks",
	"ZeroCross", "ZoomIn", "ZoomNormal", "ZoomOut", "ZoomSel",
	"ZoomToggle", "ZoomTool",
}

// dialogs take no parameters either, but they open a window in the
// application and scripting stalls until a human dismisses it. The client
// refuses them unless interactive commands are allowed.
var dialogs = []string{
	"About", "ApplyMacro", "ApplyMacrosPalette", "Benchmark", "CheckDeps",
	"ConrastAnalyser", "CrashReport", "DeviceInfo",
	"EditLabels", "EditMetaData",
	"ExportLabels", "ExportMIDI", "ExportMp3", "ExportMultiple",
	"ExportOgg", "ExportSel", "ExportWav",
	"ImportAudio", "ImportLabels", "ImportMIDI", "ImportRaw",
	"InputGain", "Karaoke", "Log",
	"ManageAnalyzers", "ManageEffects", "ManageGenerators",
	"ManageMacros", "ManageTools", "Manual",
	"MidiDeviceInfo", "MixerBoard", "NoiseReduction", "OutputGain",
	"PageSetup", "PlotSpectrum", "Preferences", "Print", "QuickHelp",
	"SaveAs", "TimerRecord", "TrackMenu", "UndoHistory", "Updates",
}

// parameterized are the commands with a parameter schema. Keys, defaults,
// value sets, and casing are exactly what the application expects on the
// wire, including the lowercase and hyphenated keys of the Nyquist
// plugin effects.
var parameterized = []Spec{
	// Project and file operations.
	{Name: "OpenProject2", Params: []Param{
		required("Filename", String),
		boolParam("AddToHistory", false),
	}},
	{Name: "SaveProject2", Params: []Param{
		required("Filename", String),
		boolParam("AddToHistory", false),
		boolParam("Compress", false),
	}},
	{Name: "Export2", Params: []Param{
		required("Filename", String),
		intParam("NumChannels", 1),
	}},
	{Name: "Import2", Params: []Param{
		required("Filename", String),
	}},

	// Generators.
	{Name: "Chirp", Params: []Param{
		rangeParam("StartFreq", 440, 0, math.Inf(1)),
		rangeParam("EndFreq", 1320, 0, math.Inf(1)),
		rangeParam("StartAmp", 0.8, 0, 1),
		rangeParam("EndAmp", 0.1, 0, 1),
		enumParam("Waveform", "Sine", waveforms...),
		enumParam("Interpolation", "Linear", "Linear", "Logarithmic"),
	}},
	{Name: "Noise", Params: []Param{
		enumParam("Type", "White", "White", "Pink", "Brownian"),
		rangeParam("Amplitude", 0.8, 0, 1),
	}},
	{Name: "Tone", Params: []Param{
		floatParam("Frequency", 440),
		floatParam("Amplitude", 0.8),
		enumParam("Waveform", "Sine", waveforms...),
	}},
	{Name: "Pluck", Params: []Param{
		intParam("pitch", 60),
		enumParam("fade", "Abrupt", "Abrupt", "Gradual"),
		rangeParam("dur", 1.0, math.Inf(-1), 60),
	}},
	{Name: "RhythmTrack", Params: []Param{
		floatParam("tempo", 120),
		intParam("timesig", 4),
		floatParam("swing", 0),
		intParam("bars", 16),
		floatParam("click-track-dur", 0),
		floatParam("offset", 0),
		enumParam("click-type", "Metronome",
			"Metronome", "Ping (short)", "Ping (long)", "Cowbell",
			"ResonantNoise", "NoiseClick", "Drip (short)", "Drip (long)"),
		intParam("high", 84),
		intParam("low", 0),
	}},
	{Name: "RissetDrum", Params: []Param{
		floatParam("freq", 0),
		floatParam("decay", 0),
		floatParam("cf", 0),
		floatParam("bw", 0),
		floatParam("noise", 0),
		floatParam("gain", 0),
	}},

	// Built-in effects.
	{Name: "Amplify", Params: []Param{
		floatParam("Ratio", 0.9),
		boolParam("AllowClipping", false),
	}},
	{Name: "AutoDuck", Params: []Param{
		floatParam("DuckAmountDb", -12),
		floatParam("InnerFadeDownLen", 0),
		floatParam("InnerFadeUpLen", 0),
		floatParam("OuterFadeDownLen", 0.5),
		floatParam("OuterFadeUpLen", 0.5),
		floatParam("ThresholdDb", -30),
		floatParam("MaximumPause", 1),
	}},
	{Name: "BassAndTreble", Params: []Param{
		floatParam("Bass", 0),
		floatParam("Treble", 0),
		floatParam("Gain", 0),
		boolParam("LinkSliders", false),
	}},
	{Name: "ChangePitch", Params: []Param{
		floatParam("Percentage", 0),
		boolParam("SBSMS", false),
	}},
	{Name: "ChangeSpeed", Params: []Param{
		floatParam("Percentage", 0),
	}},
	{Name: "ChangeTempo", Params: []Param{
		floatParam("Percentage", 0),
		boolParam("SBSMS", false),
	}},
	{Name: "ClickRemoval", Params: []Param{
		intParam("Threshold", 200),
		intParam("Width", 20),
	}},
	{Name: "Compressor", Params: []Param{
		floatParam("Threshold", -12),
		floatParam("NoiseFloor", -40),
		floatParam("Ratio", 2),
		floatParam("AttackTime", 0.2),
		floatParam("ReleaseTime", 1),
		boolParam("Normalize", true),
		boolParam("UsePeak", false),
	}},
	{Name: "Echo", Params: []Param{
		floatParam("Delay", 1),
		floatParam("Decay", 0.5),
	}},
	{Name: "FindClipping", Params: []Param{
		intParam("DutyCycleStart", 3),
		intParam("DutyCycleEnd", 3),
	}},
	{Name: "LoudnessNormalization", Params: []Param{
		boolParam("StereoIndependent", false),
		floatParam("LUFSLevel", -23),
		floatParam("RMSLevel", -20),
		boolParam("DualMono", true),
		intParam("NormalizeTo", 0),
	}},
	{Name: "Normalize", Params: []Param{
		floatParam("PeakLevel", -1),
		boolParam("ApplyGain", true),
		boolParam("RemoveDcOffset", true),
		boolParam("StereoIndependent", false),
	}},
	{Name: "Paulstretch", Params: []Param{
		floatParam("StretchFactor", 10),
		floatParam("TimeResolution", 0.25),
	}},
	{Name: "Phaser", Params: []Param{
		intParam("Stages", 2),
		intParam("DryWet", 128),
		floatParam("Freq", 0.4),
		floatParam("Phase", 0),
		intParam("Depth", 100),
		intParam("Feedback", 0),
		floatParam("Gain", -6),
	}},
	{Name: "Repeat", Params: []Param{
		intParam("Count", 1),
	}},
	{Name: "Reverb", Params: []Param{
		floatParam("RoomSize", 75),
		floatParam("Delay", 10),
		floatParam("Reverberance", 50),
		floatParam("HfDamping", 50),
		floatParam("ToneLow", 100),
		floatParam("ToneHigh", 100),
		floatParam("WetGain", -1),
		floatParam("DryGain", -1),
		floatParam("StereoWidth", 100),
		boolParam("WetOnly", false),
	}},
	{Name: "SlidingStretch", Params: []Param{
		floatParam("RatePercentChangeStart", 0),
		floatParam("RatePercentChangeEnd", 0),
		floatParam("PitchHalfStepsStart", 0),
		floatParam("PitchHalfStepsEnd", 0),
		floatParam("PitchPercentChangeStart", 0),
		floatParam("PitchPercentChangeEnd", 0),
	}},
	{Name: "TruncateSilence", Params: []Param{
		floatParam("Threshold", -20),
		stringParam("Action", "Truncate"),
		floatParam("Minimum", 0.5),
		floatParam("Truncate", 0.5),
		floatParam("Compress", 50),
		boolParam("Independent", false),
	}},
	{Name: "Wahwah", Params: []Param{
		floatParam("Freq", 1.5),
		floatParam("Phase", 0),
		intParam("Depth", 70),
		floatParam("Resonance", 2.5),
		intParam("Offset", 30),
		floatParam("Gain", -6),
	}},

	// Nyquist plugin effects.
	{Name: "AdjustableFade", Params: []Param{
		stringParam("type", "Up"),
		floatParam("curve", 0),
		stringParam("units", "Percent"),
		floatParam("gain0", 0),
		floatParam("gain1", 0),
		stringParam("preset", "None"),
	}},
	{Name: "ClipFix", Params: []Param{
		floatParam("threshold", 0),
		floatParam("gain", 0),
	}},
	{Name: "CrossfadeTracks", Params: []Param{
		stringParam("type", "ConstantGain"),
		floatParam("curve", 0),
		stringParam("direction", "Automatic"),
	}},
	{Name: "Delay", Params: []Param{
		stringParam("delay-type", "Regular"),
		floatParam("dgain", 0),
		floatParam("delay", 0),
		stringParam("pitch-type", "PitchTempo"),
		floatParam("shift", 0),
		intParam("number", 0),
		stringParam("constrain", "Yes"),
	}},
	{Name: "High-passFilter", Params: []Param{
		floatParam("frequency", 0),
		stringParam("rolloff", "dB6"),
	}},
	{Name: "Limiter", Params: []Param{
		stringParam("type", "SoftLimit"),
		floatParam("gain-L", 0),
		floatParam("gain-R", 0),
		floatParam("thresh", 0),
		floatParam("hold", 0),
		stringParam("makeup", "No"),
	}},
	{Name: "Low-passFilter", Params: []Param{
		floatParam("frequency", 0),
		stringParam("rolloff", "db6"),
	}},
	{Name: "NotchFilter", Params: []Param{
		floatParam("frequency", 0),
		floatParam("q", 0),
	}},
	{Name: "SpectralEditParametricEq", Params: []Param{
		floatParam("control-gain", 0),
	}},
	{Name: "SpectralEditShelves", Params: []Param{
		floatParam("control-gain", 0),
	}},
	{Name: "Tremolo", Params: []Param{
		stringParam("wave", "Sine"),
		intParam("phase", 0),
		intParam("wet", 0),
		floatParam("lfo", 0),
	}},
	{Name: "VocalReductionAndIsolation", Params: []Param{
		enumParam("Action", "RemoveToMono",
			"RemoveToMono", "Remove", "Isolate", "IsolateInvert",
			"RemoveCenterToMono", "RemoveCenter", "IsolateCenter",
			"IsolateCenterInvert", "Analyze"),
		floatParam("strength", 0),
		floatParam("low_transition", 0),
		floatParam("high_transition", 0),
	}},
	{Name: "Vocoder", Params: []Param{
		floatParam("dst", 0),
		enumParam("mst", "BothChannels", "BothChannels", "RightOnly"),
		intParam("bands", 0),
		floatParam("track-vl", 0),
		floatParam("noise-vl", 0),
		floatParam("radar-vl", 0),
		floatParam("radar-f", 0),
	}},

	// Analyzers.
	{Name: "BeatFinder", Params: []Param{
		intParam("thresval", 0),
	}},
	{Name: "LabelSounds", Params: []Param{
		floatParam("threshold", -30),
		stringParam("measurement", "Peak level"),
		floatParam("sil-dur", 0),
		floatParam("snd-dur", 0),
		stringParam("type", "Point before sound"),
		floatParam("pre-offset", 0),
		floatParam("post-offset", 0),
		stringParam("text", "Sound ##1"),
	}},

	// Tools.
	{Name: "NyquistPrompt", Params: []Param{
		stringParam("Command", ""),
		intParam("Version", 3),
	}},
	{Name: "RegularIntervalLabels", Params: []Param{
		stringParam("mode", "Both"),
		intParam("totalnum", 0),
		floatParam("interval", 0),
		floatParam("region", 0),
		stringParam("adjust", "No"),
		stringParam("labeltext", ""),
		stringParam("zeros", "TextOnly"),
		intParam("firstnum", 0),
		stringParam("verbose", "Details"),
	}},
	{Name: "SampleDataExport", Params: []Param{
		intParam("number", 100),
		stringParam("units", "dB"),
		required("filename", String),
		stringParam("fileformat", "None"),
		stringParam("header", "None"),
		stringParam("optext", ""),
		stringParam("channel-layout", "L-R on Same Line"),
		stringParam("messages", "Yes"),
	}},
	{Name: "Screenshot", Params: []Param{
		optional("Path", String),
		stringParam("CaptureWhat", "Window"),
		enumParam("Background", "None", "Blue", "White", "None"),
		boolParam("ToTop", true),
	}},
	{Name: "Drag", Params: []Param{
		optional("Id", Int),
		optional("Window", String),
		optional("FromX", Float),
		optional("FromY", Float),
		optional("ToX", Float),
		optional("ToY", Float),
		optional("RelativeTo", String),
	}},
	{Name: "CompareAudio", Params: []Param{
		floatParam("Threshold", 0),
	}},

	// Selection. Absent optional parameters leave that part of the
	// selection unchanged, so no defaults here.
	{Name: "SelectTime", Params: []Param{
		optional("Start", Float),
		optional("End", Float),
		optionalEnum("RelativeTo", relativeTo...),
	}},
	{Name: "SelectFrequencies", Params: []Param{
		optional("High", Float),
		optional("Low", Float),
	}},
	{Name: "SelectTracks", Params: []Param{
		optional("Track", Float),
		optional("TrackCount", Float),
		optionalEnum("Mode", "Set", "Add", "Remove"),
	}},
	{Name: "Select", Params: []Param{
		optional("Start", Float),
		optional("End", Float),
		optionalEnum("RelativeTo", relativeTo...),
		optional("High", Float),
		optional("Low", Float),
		optional("Track", Float),
		optional("TrackCount", Float),
		optionalEnum("Mode", "Set", "Add", "Remove"),
	}},

	// Introspection.
	{Name: "GetInfo", Params: []Param{
		enumParam("Type", "Commands",
			"Commands", "Menus", "Preferences", "Tracks",
			"Clips", "Envelopes", "Labels", "Boxes"),
		enumParam("Format", "JSON", infoFormats...),
	}},
	{Name: "Help", Params: []Param{
		stringParam("Command", "Help"),
		enumParam("Format", "JSON", infoFormats...),
	}},
	{Name: "Message", Params: []Param{
		stringParam("Text", "Some message"),
	}},

	// Preferences and object setters.
	{Name: "GetPreference", Params: []Param{
		required("Name", String),
	}},
	{Name: "SetPreference", Params: []Param{
		required("Name", String),
		required("Value", String),
		boolParam("Reload", false),
	}},
	{Name: "SetLabel", Params: []Param{
		required("Label", Int),
		optional("Text", String),
		optional("Start", Float),
		optional("End", Float),
		optional("Selected", Bool),
	}},
	{Name: "SetEnvelope", Params: []Param{
		optional("Time", Float),
		optional("Value", Float),
		optional("Delete", Bool),
	}},
	{Name: "SetClip", Params: []Param{
		optional("At", Float),
		optionalEnum("Color", trackColors...),
		optional("Start", Float),
	}},
	{Name: "SetProject", Params: []Param{
		optional("Name", String),
		optional("Rate", Float),
		optional("X", Int),
		optional("Y", Int),
		optional("Width", Int),
		optional("Height", Int),
	}},
	{Name: "SetTrackStatus", Params: []Param{
		optional("Name", String),
		optional("Selected", Bool),
		optional("Focused", Bool),
	}},
	{Name: "SetTrackAudio", Params: []Param{
		optional("Mute", Bool),
		optional("Solo", Bool),
		optional("Gain", Float),
		optional("Pan", Float),
	}},
	{Name: "SetTrackVisuals", Params: []Param{
		optional("Height", Int),
		optionalEnum("Color", trackColors...),
		optionalEnum("Display", "Waveform", "Spectrogram"),
		optionalEnum("Scale", "Linear", "dB"),
	}},
}
