// Package layout turns a line of text into per-letter instance transforms.
//
// Instances groups the placements by alphabet index so a renderer can draw
// every occurrence of a glyph with one instanced draw call. InstanceBytes
// and InstanceLayout describe the per-instance vertex buffer; Camera
// supplies the matching view-projection uniform.
//
//	lines, err := layout.Instances("hello")
//	if err != nil {
//	    return err
//	}
//	for idx, instances := range lines {
//	    if len(instances) == 0 || alphabet[idx].IsEmpty() {
//	        continue
//	    }
//	    data := layout.InstanceBytes(instances)
//	    // upload data, draw alphabet[idx] len(instances) times
//	}
package layout
