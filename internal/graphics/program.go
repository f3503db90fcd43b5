package graphics

import (
	"fmt"

	"scene-studio/internal/shading"
)

// ApplyState flushes every field of the render state to the named
// uniforms of the scene shading program. Must run after Use and before
// the draw call that should see the state.
func (s *Shader) ApplyState(st *shading.RenderState) {
	model, view, projection := st.Model, st.View, st.Projection
	s.SetMatrix4("model", &model[0])
	s.SetMatrix4("view", &view[0])
	s.SetMatrix4("projection", &projection[0])

	s.SetVector4("objectColor", st.ObjectColor.X(), st.ObjectColor.Y(), st.ObjectColor.Z(), st.ObjectColor.W())
	s.SetVector2("UVscale", st.UVScale.X(), st.UVScale.Y())

	s.SetBool("bUseTexture", st.UseTexture)
	if st.UseTexture {
		s.SetInt("objectTexture", st.TextureSlot)
	}
	s.SetBool("bUseTextureOverlay", st.UseTextureOverlay)
	if st.UseTextureOverlay {
		s.SetInt("overlayTexture", st.OverlaySlot)
	}

	s.SetBool("bUseLighting", st.UseLighting)
	s.SetVector3("viewPosition", st.ViewPosition.X(), st.ViewPosition.Y(), st.ViewPosition.Z())

	s.SetVector3("material.diffuseColor", st.Material.DiffuseColor.X(), st.Material.DiffuseColor.Y(), st.Material.DiffuseColor.Z())
	s.SetVector3("material.specularColor", st.Material.SpecularColor.X(), st.Material.SpecularColor.Y(), st.Material.SpecularColor.Z())
	s.SetFloat("material.shininess", st.Material.Shininess)

	s.applyLights(&st.Lights)
}

func (s *Shader) applyLights(rig *shading.LightRig) {
	d := &rig.Directional
	s.SetBool("directionalLight.bActive", d.Active)
	if d.Active {
		s.SetVector3("directionalLight.direction", d.Direction.X(), d.Direction.Y(), d.Direction.Z())
		s.SetVector3("directionalLight.ambient", d.Ambient.X(), d.Ambient.Y(), d.Ambient.Z())
		s.SetVector3("directionalLight.diffuse", d.Diffuse.X(), d.Diffuse.Y(), d.Diffuse.Z())
		s.SetVector3("directionalLight.specular", d.Specular.X(), d.Specular.Y(), d.Specular.Z())
	}

	for i := range rig.Points {
		p := &rig.Points[i]
		prefix := fmt.Sprintf("pointLights[%d].", i)
		s.SetBool(prefix+"bActive", p.Active)
		if !p.Active {
			continue
		}
		s.SetVector3(prefix+"position", p.Position.X(), p.Position.Y(), p.Position.Z())
		s.SetVector3(prefix+"ambient", p.Ambient.X(), p.Ambient.Y(), p.Ambient.Z())
		s.SetVector3(prefix+"diffuse", p.Diffuse.X(), p.Diffuse.Y(), p.Diffuse.Z())
		s.SetVector3(prefix+"specular", p.Specular.X(), p.Specular.Y(), p.Specular.Z())
		s.SetFloat(prefix+"constant", p.Constant)
		s.SetFloat(prefix+"linear", p.Linear)
		s.SetFloat(prefix+"quadratic", p.Quadratic)
	}

	sp := &rig.Spot
	s.SetBool("spotLight.bActive", sp.Active)
	if sp.Active {
		s.SetVector3("spotLight.position", sp.Position.X(), sp.Position.Y(), sp.Position.Z())
		s.SetVector3("spotLight.direction", sp.Direction.X(), sp.Direction.Y(), sp.Direction.Z())
		s.SetVector3("spotLight.ambient", sp.Ambient.X(), sp.Ambient.Y(), sp.Ambient.Z())
		s.SetVector3("spotLight.diffuse", sp.Diffuse.X(), sp.Diffuse.Y(), sp.Diffuse.Z())
		s.SetVector3("spotLight.specular", sp.Specular.X(), sp.Specular.Y(), sp.Specular.Z())
		s.SetFloat("spotLight.constant", sp.Constant)
		s.SetFloat("spotLight.linear", sp.Linear)
		s.SetFloat("spotLight.quadratic", sp.Quadratic)
		s.SetFloat("spotLight.cutOff", sp.CutOff)
		s.SetFloat("spotLight.outerCutOff", sp.OuterCutOff)
	}
}
