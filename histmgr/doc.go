// Package histmgr keeps a run's histograms and profiles by name and writes
// them into an output file.
//
// A Manager holds four independent collections:
//
//	Collection     Kinds          Lookup
//	1D histograms  TH1F, TH1D     Histo1D
//	2D histograms  TH2F, TH2D     Histo2D
//	1D profiles    TProfile       Profile1D
//	2D profiles    TProfile2D     Profile2D
//
// Objects come either from a configuration file (LoadConfig) or from the
// AddHisto1D/AddHisto2D families. Each object may name an output
// sub-directory such as "det/ecal"; the directory is created in the output
// file when the object is added and WriteAll puts the object there.
//
// Problems are never returned to the caller. A bad configuration line,
// unknown kind, duplicate name, missing output file or unknown name is
// logged through the Manager's *slog.Logger and the affected unit of work
// is skipped, so a long batch job keeps running on partial configuration.
// The logged error wraps one of the Err* sentinels of this package.
//
// Example:
//
//	out, err := outfile.Create("run.yaml", nil)
//	if err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	m := histmgr.New(out, histmgr.WithLogger(slog.Default()))
//	m.LoadConfig("histos.cfg")
//	if h, ok := m.Histo1D("energy"); ok {
//	    h.Fill(12.5, 1)
//	}
//	m.WriteAll(true)
package histmgr
