package data

import (
	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
)

// IsCluster reports whether the subtype at indices is Cluster.
func (d *Data) IsCluster(indices ...int) bool { return d.isCode(types.Cluster, indices) }

// ClusterSize returns the number of children of the cluster at indices.
func (d *Data) ClusterSize(indices ...int) (int, error) {
	typ, _, _, err := d.requireSubtype(types.Cluster, indices)
	if err != nil {
		return 0, errors.Wrap(err, "data: ClusterSize")
	}
	return typ.Size(), nil
}
